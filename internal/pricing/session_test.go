package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionFixture() *EditSession {
	q := &Quotation{
		Products: []LineItem{
			LineItem{Kind: KindProduct, Category: CategoryProduct, Quantity: dec("14"), UnitPrice: dec("380000"), ProfitRate: FractionFromFloat(0.25)}.Recalculated(),
			LineItem{Kind: KindProduct, Category: CategoryProduct, Quantity: dec("1"), UnitPrice: dec("4500000"), ProfitRate: FractionFromFloat(0.25)}.Recalculated(),
		},
		Ancillary: []LineItem{
			LineItem{Kind: KindAncillary, Category: CategoryLabor, Description: "Instalación", Quantity: dec("5.5"), UnitPrice: dec("250000"), ProfitRate: FractionFromFloat(0.1)}.Recalculated(),
		},
		Params: DefaultParameters(),
	}
	return NewEditSession(q)
}

func TestEditSession_EditRecomputesRunningTotal(t *testing.T) {
	s := sessionFixture()
	before := s.Working().Summary()

	after, err := s.EditProduct(0, FieldQuantity, dec("16"))
	require.NoError(t, err)
	assert.True(t, s.Dirty())
	assert.True(t, after.FinalPrice.GreaterThan(before.FinalPrice))

	// A second line edited while the first is in flight feeds the same summary.
	after2, err := s.EditAncillary(0, FieldUnitPrice, dec("300000"))
	require.NoError(t, err)
	assert.True(t, after2.FinalPrice.GreaterThan(after.FinalPrice))
}

func TestEditSession_DiscardRestoresCommittedExactly(t *testing.T) {
	s := sessionFixture()
	original := s.Working().Summary()

	_, err := s.EditProduct(1, FieldUnitPrice, dec("9999999"))
	require.NoError(t, err)
	s.SetParameters(Parameters{
		CommercialManagement: FractionFromFloat(0.1),
		Administration:       FractionFromFloat(0.1),
		Contingency:          FractionFromFloat(0.1),
		Profit:               FractionFromFloat(0.1),
		ProfitIVA:            FractionFromFloat(0.19),
		Withholding:          FractionFromFloat(0.1),
	})
	require.True(t, s.Dirty())

	s.Discard()
	assert.False(t, s.Dirty())
	assert.Equal(t, original, s.Working().Summary())
}

func TestEditSession_PromoteMakesWorkingTheNewBaseline(t *testing.T) {
	s := sessionFixture()
	edited, err := s.EditProduct(0, FieldQuantity, dec("20"))
	require.NoError(t, err)

	s.Promote()
	assert.False(t, s.Dirty())

	// Discarding after promote keeps the promoted state, not the original.
	_, err = s.EditProduct(0, FieldQuantity, dec("3"))
	require.NoError(t, err)
	s.Discard()
	assert.Equal(t, edited, s.Working().Summary())
}

func TestEditSession_WorkingNeverAliasesCommitted(t *testing.T) {
	s := sessionFixture()
	_, err := s.EditProduct(0, FieldQuantity, dec("99"))
	require.NoError(t, err)

	s2 := NewEditSession(s.Working())
	_, err = s2.EditProduct(0, FieldQuantity, dec("1"))
	require.NoError(t, err)

	// The first session's working copy is untouched by the second session.
	assert.Equal(t, "99", s.Working().Products[0].Quantity.String())
}

func TestEditSession_OutOfRangeLine(t *testing.T) {
	s := sessionFixture()
	_, err := s.EditProduct(7, FieldQuantity, dec("1"))
	assert.Error(t, err)
	_, err = s.EditAncillary(-1, FieldQuantity, dec("1"))
	assert.Error(t, err)
	assert.False(t, s.Dirty())
}
