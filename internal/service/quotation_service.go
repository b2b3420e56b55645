package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jhanky/Energy4Cero-sub001/internal/dto"
	"github.com/Jhanky/Energy4Cero-sub001/internal/model"
	"github.com/Jhanky/Energy4Cero-sub001/internal/pricing"
	"github.com/Jhanky/Energy4Cero-sub001/internal/repository"
	"github.com/Jhanky/Energy4Cero-sub001/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type QuotationService interface {
	Create(ctx context.Context, req dto.CreateQuotationRequest) (*dto.QuotationResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateQuotationRequest) (*dto.QuotationResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.QuotationResponse, error)
	List(ctx context.Context, filter dto.QuotationFilter) (*dto.QuotationListResponse, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, statusID int) error
	Delete(ctx context.Context, id uuid.UUID) error
	Recalculate(ctx context.Context, req dto.RecalculateRequest) (*dto.CostSummaryResponse, error)
	Send(ctx context.Context, id uuid.UUID) error
	ListStatuses(ctx context.Context) ([]dto.StatusResponse, error)
}

type quotationService struct {
	repo       repository.QuotationRepository
	clientRepo repository.ClientRepository
	catalog    CatalogService
	dispatcher *worker.Dispatcher
}

func NewQuotationService(
	repo repository.QuotationRepository,
	clientRepo repository.ClientRepository,
	catalog CatalogService,
	dispatcher *worker.Dispatcher,
) QuotationService {
	return &quotationService{
		repo:       repo,
		clientRepo: clientRepo,
		catalog:    catalog,
		dispatcher: dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Create ────────────────────────────────────────────────────────────────────
// Flow:
//   1. Validate client exists
//   2. Resolve each product line against the catalog (brand/model/price
//      snapshot); panel quantities are derived from the target power
//   3. Apply the creation profit policy to lines without an explicit rate
//   4. Compute the layered cost summary
//   5. BEGIN TX: nextval number, insert quotation + children
//   6. COMMIT

func (s *quotationService) Create(ctx context.Context, req dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("invalid client_id: %w", err)
	}
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, errors.New("client not found")
	}

	products, err := s.resolveProductLines(ctx, req.TargetPowerKwp, req.UsedProducts, nil)
	if err != nil {
		return nil, err
	}
	items, err := resolveItemLines(req.Items, nil, true)
	if err != nil {
		return nil, err
	}

	storedRates := ratesFromRequest(req.Parameters, nil)
	params := resolveParameters(storedRates)
	summary := pricing.ComputeCostSummary(products, items, params)

	var q model.Quotation
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		number, err := s.repo.NextNumber(ctx, tx)
		if err != nil {
			return err
		}

		q = model.Quotation{
			Number:         number,
			ClientID:       clientID,
			ProjectName:    req.ProjectName,
			TargetPowerKwp: req.TargetPowerKwp,
			SystemType:     req.SystemType,
			GridType:       req.GridType,
			StatusID:       model.StatusDraft,
		}
		applyRates(&q, storedRates)
		applySummary(&q, summary)

		for _, li := range products {
			q.UsedProducts = append(q.UsedProducts, lineToUsedProduct(li))
		}
		for _, li := range items {
			q.Items = append(q.Items, lineToItem(li))
		}

		return s.repo.Create(ctx, tx, &q)
	})
	if txErr != nil {
		return nil, txErr
	}

	q.Client = client
	return quotationToResponse(&q), nil
}

// ── Update ────────────────────────────────────────────────────────────────────
// Whole-item replace: payload rows carrying used_product_id/item_id update the
// stored row, rows without an id insert, and stored rows absent from the
// payload are deleted. Every derived figure is recomputed before the write —
// client-sent totals are never trusted.

func (s *quotationService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateQuotationRequest) (*dto.QuotationResponse, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("quotation not found")
	}

	storedProducts := make(map[uuid.UUID]*model.UsedProduct, len(existing.UsedProducts))
	for i := range existing.UsedProducts {
		storedProducts[existing.UsedProducts[i].ID] = &existing.UsedProducts[i]
	}
	storedItems := make(map[uuid.UUID]*model.QuotationItem, len(existing.Items))
	for i := range existing.Items {
		storedItems[existing.Items[i].ID] = &existing.Items[i]
	}

	products, err := s.resolveProductLines(ctx, req.TargetPowerKwp, req.UsedProducts, storedProducts)
	if err != nil {
		return nil, err
	}
	items, err := resolveItemLines(req.Items, storedItems, false)
	if err != nil {
		return nil, err
	}

	storedRates := ratesFromRequest(req.Parameters, existing)
	params := resolveParameters(storedRates)
	summary := pricing.ComputeCostSummary(products, items, params)

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		existing.ProjectName = req.ProjectName
		existing.TargetPowerKwp = req.TargetPowerKwp
		existing.SystemType = req.SystemType
		existing.GridType = req.GridType
		applyRates(existing, storedRates)
		applySummary(existing, summary)

		if err := s.repo.SaveTx(tx, existing); err != nil {
			return err
		}

		var keepProducts []uuid.UUID
		for _, li := range products {
			row := lineToUsedProduct(li)
			row.QuotationID = existing.ID
			if err := s.repo.UpsertProductTx(tx, &row); err != nil {
				return err
			}
			keepProducts = append(keepProducts, row.ID)
		}
		if err := s.repo.DeleteProductsNotInTx(tx, existing.ID, keepProducts); err != nil {
			return err
		}

		var keepItems []uuid.UUID
		for _, li := range items {
			row := lineToItem(li)
			row.QuotationID = existing.ID
			if err := s.repo.UpsertItemTx(tx, &row); err != nil {
				return err
			}
			keepItems = append(keepItems, row.ID)
		}
		return s.repo.DeleteItemsNotInTx(tx, existing.ID, keepItems)
	})
	if txErr != nil {
		return nil, txErr
	}

	reloaded, err := s.repo.FindByID(ctx, id)
	if err != nil {
		// The write committed; serve the in-memory aggregate.
		return quotationToResponse(existing), nil
	}
	return quotationToResponse(reloaded), nil
}

func (s *quotationService) Get(ctx context.Context, id uuid.UUID) (*dto.QuotationResponse, error) {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("quotation not found")
	}
	return quotationToResponse(q), nil
}

func (s *quotationService) List(ctx context.Context, filter dto.QuotationFilter) (*dto.QuotationListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	quotations, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuotationListItem, 0, len(quotations))
	for i := range quotations {
		items = append(items, quotationToListItem(&quotations[i]))
	}
	return &dto.QuotationListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// ChangeStatus validates the target id against the fixed status catalog and
// writes it. Transitions are unrestricted: the commercial flow moves back and
// forth (Sent → Pending → Sent) and the backend does not referee it.
func (s *quotationService) ChangeStatus(ctx context.Context, id uuid.UUID, statusID int) error {
	if _, ok := model.StatusName(statusID); !ok {
		return fmt.Errorf("unknown status id %d", statusID)
	}
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("quotation not found")
	}
	if err := s.repo.UpdateStatus(ctx, id, statusID); err != nil {
		return err
	}

	// Contracting triggers electronic invoicing. Enqueue failures are logged;
	// re-applying the status enqueues again.
	if statusID == model.StatusContracted && s.dispatcher != nil {
		payload := worker.InvoiceJobPayload{QuotationID: q.ID.String()}
		if q.Client != nil && q.Client.Email != nil && *q.Client.Email != "" {
			payload.ClientEmail = q.Client.Email
		}
		if err := s.dispatcher.EnqueueInvoicing(ctx, payload); err != nil {
			log.Warn().Err(err).Str("quotation_id", q.ID.String()).Msg("quotation_service: failed to enqueue invoicing job")
		}
	}
	return nil
}

// Delete removes the quotation and its child rows unconditionally. Any status
// may be deleted; the commercial team owns that decision.
func (s *quotationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("quotation not found")
	}
	return s.repo.Delete(ctx, id)
}

// Recalculate is the stateless preview path: it recomputes every line plus the
// layered summary from raw values on screen, persisting nothing.
func (s *quotationService) Recalculate(ctx context.Context, req dto.RecalculateRequest) (*dto.CostSummaryResponse, error) {
	products := make([]pricing.LineItem, 0, len(req.UsedProducts))
	for _, row := range req.UsedProducts {
		rate := pricing.Fraction{}
		if row.ProfitPercentage != nil {
			rate = pricing.NewFraction(*row.ProfitPercentage)
		}
		products = append(products, pricing.LineItem{
			Kind:       pricing.KindProduct,
			Category:   pricing.CategoryProduct,
			Quantity:   decimal.NewFromInt(int64(row.Quantity)),
			UnitPrice:  row.UnitPrice,
			ProfitRate: rate,
		}.Recalculated())
	}

	items, err := resolveItemLines(req.Items, nil, false)
	if err != nil {
		return nil, err
	}

	params := resolveParameters(ratesFromRequest(req.Parameters, nil))
	summary := pricing.ComputeCostSummary(products, items, params)
	resp := summaryToResponse(summary)
	return &resp, nil
}

// Send marks the quotation Sent and enqueues the proposal PDF + email job.
func (s *quotationService) Send(ctx context.Context, id uuid.UUID) error {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("quotation not found")
	}
	if q.Client == nil || q.Client.Email == nil || *q.Client.Email == "" {
		return errors.New("client has no email address")
	}
	if err := s.repo.UpdateStatus(ctx, id, model.StatusSent); err != nil {
		return err
	}
	if s.dispatcher != nil {
		payload := worker.ProposalJobPayload{
			QuotationID: q.ID.String(),
			ToEmail:     *q.Client.Email,
		}
		if err := s.dispatcher.EnqueueProposal(ctx, payload); err != nil {
			log.Warn().Err(err).Str("quotation_id", q.ID.String()).Msg("quotation_service: failed to enqueue proposal job")
		}
	}
	return nil
}

func (s *quotationService) ListStatuses(ctx context.Context) ([]dto.StatusResponse, error) {
	statuses, err := s.repo.ListStatuses(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StatusResponse, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, dto.StatusResponse{ID: st.ID, Name: st.Name})
	}
	return out, nil
}

// ── Line resolution ──────────────────────────────────────────────────────────

// resolveProductLines turns payload rows into fully derived pricing lines.
// stored maps existing row ids to their DB rows; it is nil on create.
func (s *quotationService) resolveProductLines(
	ctx context.Context,
	targetPowerKwp decimal.Decimal,
	rows []dto.ProductLineRequest,
	stored map[uuid.UUID]*model.UsedProduct,
) ([]pricing.LineItem, error) {
	lines := make([]pricing.LineItem, 0, len(rows))
	for i, row := range rows {
		productID, err := uuid.Parse(row.ProductID)
		if err != nil {
			return nil, fmt.Errorf("used_products[%d]: invalid product_id: %w", i, err)
		}
		snap, err := s.catalog.Snapshot(ctx, row.ProductType, productID)
		if err != nil {
			// An unresolvable reference quotes at zero: zero unit power
			// derives zero panels and the line stays editable instead of
			// failing the save.
			snap = &ProductSnapshot{}
		}

		li := pricing.LineItem{
			Kind:     pricing.KindProduct,
			Category: pricing.CategoryProduct,
			Product: &pricing.ProductRef{
				Type:  pricing.ProductType(row.ProductType),
				ID:    productID,
				Brand: snap.Brand,
				Model: snap.Model,
			},
		}

		var storedRow *model.UsedProduct
		if row.UsedProductID != nil {
			rid, err := uuid.Parse(*row.UsedProductID)
			if err != nil {
				return nil, fmt.Errorf("used_products[%d]: invalid used_product_id: %w", i, err)
			}
			storedRow = stored[rid]
			if storedRow == nil {
				return nil, fmt.Errorf("used_products[%d]: row %s does not belong to this quotation", i, rid)
			}
			persisted := rid
			li.PersistedID = &persisted
		}

		// Unit price: explicit > stored > catalog.
		switch {
		case row.UnitPrice != nil:
			li.UnitPrice = *row.UnitPrice
		case storedRow != nil:
			li.UnitPrice = storedRow.UnitPrice
		default:
			li.UnitPrice = snap.Price
		}

		// Profit rate: on create the company policy overrides whatever rate
		// was sent. On edit: explicit > stored > policy (for brand-new rows).
		switch {
		case stored == nil:
			li = pricing.ApplyCreationPolicy(li)
		case row.ProfitPercentage != nil:
			li.ProfitRate = pricing.NewFraction(*row.ProfitPercentage)
		case storedRow != nil:
			li.ProfitRate = pricing.NewFraction(storedRow.ProfitPct)
		default:
			li = pricing.ApplyCreationPolicy(li)
		}

		// Panel count always follows the target power, overriding whatever
		// quantity was sent. Other product types are quoted as sent.
		if row.ProductType == string(pricing.ProductPanel) {
			li.Quantity = decimal.NewFromInt(pricing.DeriveProductQuantity(targetPowerKwp, snap.UnitPowerW))
		} else if row.Quantity != nil {
			li.Quantity = decimal.NewFromInt(int64(*row.Quantity))
		} else if storedRow != nil {
			li.Quantity = decimal.NewFromInt(int64(storedRow.Quantity))
		} else {
			li.Quantity = decimal.NewFromInt(1)
		}

		lines = append(lines, li.Recalculated())
	}
	return lines, nil
}

// creating forces the creation profit policy onto the categories it covers;
// the stateless recalculate path passes false so on-screen rates are honored.
func resolveItemLines(rows []dto.ItemLineRequest, stored map[uuid.UUID]*model.QuotationItem, creating bool) ([]pricing.LineItem, error) {
	lines := make([]pricing.LineItem, 0, len(rows))
	for i, row := range rows {
		li := pricing.LineItem{
			Kind:        pricing.KindAncillary,
			Description: row.Description,
			Category:    pricing.Category(row.Category),
			Unit:        row.Unit,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
		}

		var storedRow *model.QuotationItem
		if row.ItemID != nil {
			rid, err := uuid.Parse(*row.ItemID)
			if err != nil {
				return nil, fmt.Errorf("items[%d]: invalid item_id: %w", i, err)
			}
			storedRow = stored[rid]
			if storedRow == nil {
				return nil, fmt.Errorf("items[%d]: row %s does not belong to this quotation", i, rid)
			}
			persisted := rid
			li.PersistedID = &persisted
		}

		if row.ProfitPercentage != nil {
			li.ProfitRate = pricing.NewFraction(*row.ProfitPercentage)
		} else if storedRow != nil {
			li.ProfitRate = pricing.NewFraction(storedRow.ProfitPct)
		}
		// The policy overrides sent rates for covered categories on create;
		// rows added during an edit open at the policy rate unless a rate
		// was sent explicitly.
		if creating || (row.ProfitPercentage == nil && storedRow == nil) {
			li = pricing.ApplyCreationPolicy(li)
		}

		lines = append(lines, li.Recalculated())
	}
	return lines, nil
}

// ── Parameters ───────────────────────────────────────────────────────────────

// storedRates mirrors the six nullable rate columns. A nil entry means "not
// stored — use the company default at computation time".
type storedRates struct {
	commercialManagement *decimal.Decimal
	administration       *decimal.Decimal
	contingency          *decimal.Decimal
	profit               *decimal.Decimal
	profitIVA            *decimal.Decimal
	withholding          *decimal.Decimal
}

// ratesFromRequest overlays request values on what the record already stores.
// Only explicitly sent rates are persisted; existing NULLs stay NULL.
func ratesFromRequest(p dto.ParametersRequest, existing *model.Quotation) storedRates {
	r := storedRates{}
	if existing != nil {
		r.commercialManagement = existing.CommercialManagementPct
		r.administration = existing.AdministrationPct
		r.contingency = existing.ContingencyPct
		r.profit = existing.ProfitPct
		r.profitIVA = existing.ProfitIVAPct
		r.withholding = existing.WithholdingPct
	}
	if p.CommercialManagementPercentage != nil {
		r.commercialManagement = p.CommercialManagementPercentage
	}
	if p.AdministrationPercentage != nil {
		r.administration = p.AdministrationPercentage
	}
	if p.ContingencyPercentage != nil {
		r.contingency = p.ContingencyPercentage
	}
	if p.ProfitPercentage != nil {
		r.profit = p.ProfitPercentage
	}
	if p.ProfitIVAPercentage != nil {
		r.profitIVA = p.ProfitIVAPercentage
	}
	if p.WithholdingPercentage != nil {
		r.withholding = p.WithholdingPercentage
	}
	return r
}

// resolveParameters fills the gaps with company defaults. Stored values win,
// including explicit zeros; only nil falls back.
func resolveParameters(r storedRates) pricing.Parameters {
	params := pricing.DefaultParameters()
	if r.commercialManagement != nil {
		params.CommercialManagement = pricing.NewFraction(*r.commercialManagement)
	}
	if r.administration != nil {
		params.Administration = pricing.NewFraction(*r.administration)
	}
	if r.contingency != nil {
		params.Contingency = pricing.NewFraction(*r.contingency)
	}
	if r.profit != nil {
		params.Profit = pricing.NewFraction(*r.profit)
	}
	if r.profitIVA != nil {
		params.ProfitIVA = pricing.NewFraction(*r.profitIVA)
	}
	if r.withholding != nil {
		params.Withholding = pricing.NewFraction(*r.withholding)
	}
	return params
}

func applyRates(q *model.Quotation, r storedRates) {
	q.CommercialManagementPct = r.commercialManagement
	q.AdministrationPct = r.administration
	q.ContingencyPct = r.contingency
	q.ProfitPct = r.profit
	q.ProfitIVAPct = r.profitIVA
	q.WithholdingPct = r.withholding
}

func applySummary(q *model.Quotation, s pricing.CostSummary) {
	q.Subtotal = s.Subtotal
	q.CommercialManagement = s.CommercialManagement
	q.Subtotal2 = s.Subtotal2
	q.Administration = s.Administration
	q.Contingency = s.Contingency
	q.Profit = s.Profit
	q.ProfitIVA = s.ProfitIVA
	q.Subtotal3 = s.Subtotal3
	q.Withholdings = s.Withholdings
	q.TotalValue = s.FinalPrice
}

// ── Mapping helpers ──────────────────────────────────────────────────────────

func lineToUsedProduct(li pricing.LineItem) model.UsedProduct {
	row := model.UsedProduct{
		ProductType:  string(li.Product.Type),
		ProductID:    li.Product.ID,
		Brand:        li.Product.Brand,
		Model:        li.Product.Model,
		Quantity:     int(li.Quantity.IntPart()),
		UnitPrice:    li.UnitPrice,
		ProfitPct:    li.ProfitRate.Decimal,
		PartialValue: li.PartialValue,
		Profit:       li.Profit,
		TotalValue:   li.Total,
	}
	if li.PersistedID != nil {
		row.ID = *li.PersistedID
	}
	return row
}

func lineToItem(li pricing.LineItem) model.QuotationItem {
	row := model.QuotationItem{
		Description:  li.Description,
		Category:     string(li.Category),
		Unit:         li.Unit,
		Quantity:     li.Quantity,
		UnitPrice:    li.UnitPrice,
		ProfitPct:    li.ProfitRate.Decimal,
		PartialValue: li.PartialValue,
		Profit:       li.Profit,
		TotalValue:   li.Total,
	}
	if li.PersistedID != nil {
		row.ID = *li.PersistedID
	}
	return row
}

func summaryToResponse(s pricing.CostSummary) dto.CostSummaryResponse {
	return dto.CostSummaryResponse{
		Subtotal:             s.Subtotal,
		CommercialManagement: s.CommercialManagement,
		Subtotal2:            s.Subtotal2,
		Administration:       s.Administration,
		Contingency:          s.Contingency,
		Profit:               s.Profit,
		ProfitIVA:            s.ProfitIVA,
		Subtotal3:            s.Subtotal3,
		Withholdings:         s.Withholdings,
		TotalValue:           s.FinalPrice,
	}
}

func storedSummaryResponse(q *model.Quotation) dto.CostSummaryResponse {
	return dto.CostSummaryResponse{
		Subtotal:             q.Subtotal,
		CommercialManagement: q.CommercialManagement,
		Subtotal2:            q.Subtotal2,
		Administration:       q.Administration,
		Contingency:          q.Contingency,
		Profit:               q.Profit,
		ProfitIVA:            q.ProfitIVA,
		Subtotal3:            q.Subtotal3,
		Withholdings:         q.Withholdings,
		TotalValue:           q.TotalValue,
	}
}

func parametersResponse(q *model.Quotation) dto.ParametersResponse {
	params := resolveParameters(storedRates{
		commercialManagement: q.CommercialManagementPct,
		administration:       q.AdministrationPct,
		contingency:          q.ContingencyPct,
		profit:               q.ProfitPct,
		profitIVA:            q.ProfitIVAPct,
		withholding:          q.WithholdingPct,
	})
	return dto.ParametersResponse{
		CommercialManagementPercentage: params.CommercialManagement.Decimal,
		AdministrationPercentage:       params.Administration.Decimal,
		ContingencyPercentage:          params.Contingency.Decimal,
		ProfitPercentage:               params.Profit.Decimal,
		ProfitIVAPercentage:            params.ProfitIVA.Decimal,
		WithholdingPercentage:          params.Withholding.Decimal,
	}
}

func quotationToResponse(q *model.Quotation) *dto.QuotationResponse {
	resp := &dto.QuotationResponse{
		ID:             q.ID.String(),
		Number:         q.Number,
		ClientID:       q.ClientID.String(),
		ProjectName:    q.ProjectName,
		TargetPowerKwp: q.TargetPowerKwp,
		SystemType:     q.SystemType,
		GridType:       q.GridType,
		StatusID:       q.StatusID,
		Parameters:     parametersResponse(q),
		Summary:        storedSummaryResponse(q),
		UsedProducts:   make([]dto.ProductLineResponse, 0, len(q.UsedProducts)),
		Items:          make([]dto.ItemLineResponse, 0, len(q.Items)),
		CreatedAt:      q.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      q.UpdatedAt.Format(time.RFC3339),
	}
	if q.Client != nil {
		resp.ClientName = q.Client.Name
	}
	if name, ok := model.StatusName(q.StatusID); ok {
		resp.StatusName = name
	}
	for i := range q.UsedProducts {
		p := &q.UsedProducts[i]
		resp.UsedProducts = append(resp.UsedProducts, dto.ProductLineResponse{
			UsedProductID:    p.ID.String(),
			ProductType:      p.ProductType,
			ProductID:        p.ProductID.String(),
			Brand:            p.Brand,
			Model:            p.Model,
			Quantity:         p.Quantity,
			UnitPrice:        p.UnitPrice,
			ProfitPercentage: p.ProfitPct,
			PartialValue:     p.PartialValue,
			Profit:           p.Profit,
			TotalValue:       p.TotalValue,
		})
	}
	for i := range q.Items {
		it := &q.Items[i]
		resp.Items = append(resp.Items, dto.ItemLineResponse{
			ItemID:           it.ID.String(),
			Description:      it.Description,
			Category:         it.Category,
			Unit:             it.Unit,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			ProfitPercentage: it.ProfitPct,
			PartialValue:     it.PartialValue,
			Profit:           it.Profit,
			TotalValue:       it.TotalValue,
		})
	}
	return resp
}

func quotationToListItem(q *model.Quotation) dto.QuotationListItem {
	item := dto.QuotationListItem{
		ID:             q.ID.String(),
		Number:         q.Number,
		ClientID:       q.ClientID.String(),
		ProjectName:    q.ProjectName,
		TargetPowerKwp: q.TargetPowerKwp,
		StatusID:       q.StatusID,
		TotalValue:     q.TotalValue,
		CreatedAt:      q.CreatedAt.Format(time.RFC3339),
	}
	if q.Client != nil {
		item.ClientName = q.Client.Name
	}
	if name, ok := model.StatusName(q.StatusID); ok {
		item.StatusName = name
	}
	return item
}
