//go:build integration

package e2e

// End-to-end integration tests using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// Covered flows:
//   - Full quotation cycle (login → client → catalog → quotation → list)
//   - Panel quantity derivation and layered cost summary over the wire
//   - Whole-item update with the insert/update/delete row discriminator
//   - Status change and stateless recalculation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Jhanky/Energy4Cero-sub001/internal/config"
	"github.com/Jhanky/Energy4Cero-sub001/internal/infra"
	"github.com/Jhanky/Energy4Cero-sub001/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
	engine *gin.Engine
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("energy4cero_test"),
		tcPostgres.WithUsername("energy4cero"),
		tcPostgres.WithPassword("energy4cero"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		DIANSidecarURL:     "http://localhost:9999", // unused here
		WorkerPoolSize:     1,
		CompanyName:        "Energy4Cero",
		PDFStoragePath:     t.TempDir(),
	}

	// NewDatabase runs AutoMigrate plus the schema patches (sequence, status seed).
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Seed admin user
	hash, err := bcrypt.GenerateFromPassword([]byte("energy4cero-e2e"), 12)
	require.NoError(t, err)
	require.NoError(t, db.Exec(`INSERT INTO users (username, name, password_hash, role, active)
		VALUES ('admin', 'Admin E2E', ?, 'admin', true)
		ON CONFLICT DO NOTHING`, string(hash)).Error)

	dianCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	r := router.New(cfg, db, rdb, dianCB)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"username": "admin", "password": "energy4cero-e2e"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{server: srv, token: loginBody.AccessToken, engine: r}
}

func (env *testEnv) createClient(t *testing.T) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/v1/clients",
		jsonBody(t, map[string]any{
			"name":          "Finca La Esperanza",
			"document_type": "NIT",
			"document":      "900123456-7",
			"email":         "cliente@e2e.test",
		}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var client struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &client)
	return client.ID
}

func (env *testEnv) createPanel(t *testing.T) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/v1/panels",
		jsonBody(t, map[string]any{
			"brand":        "Jinko",
			"model":        "Tiger Neo 415W",
			"unit_power_w": 415,
			"price":        480000,
		}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var panel struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &panel)
	return panel.ID
}

type quotationBody struct {
	ID           string `json:"id"`
	Number       int    `json:"number"`
	StatusID     int    `json:"status_id"`
	StatusName   string `json:"status_name"`
	UsedProducts []struct {
		UsedProductID    string `json:"used_product_id"`
		ProductType      string `json:"product_type"`
		Quantity         int    `json:"quantity"`
		ProfitPercentage string `json:"profit_percentage"`
	} `json:"used_products"`
	Items []struct {
		ItemID   string `json:"item_id"`
		Category string `json:"category"`
	} `json:"items"`
	Summary struct {
		Subtotal   string `json:"subtotal"`
		Subtotal2  string `json:"subtotal2"`
		TotalValue string `json:"total_value"`
	} `json:"summary"`
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_FullQuotationCycle(t *testing.T) {
	env := setupTestEnv(t)
	clientID := env.createClient(t)
	panelID := env.createPanel(t)

	// Create: the client sends quantity 99 for the panel line; the backend
	// must derive 14 from 5.5 kWp / 415 W and ignore the sent value.
	createResp := do(t, env.server, "POST", "/v1/quotations",
		jsonBody(t, map[string]any{
			"client_id":        clientID,
			"project_name":     "Residencial 5.5 kWp",
			"target_power_kwp": 5.5,
			"system_type":      "on-grid",
			"grid_type":        "single-phase",
			"used_products": []map[string]any{
				{"product_type": "panel", "product_id": panelID, "quantity": 99},
			},
			"items": []map[string]any{
				{"description": "Tramites operador de red", "category": "permits",
					"unit": "global", "quantity": 1, "unit_price": 800000},
			},
		}), env.token)
	require.Equal(t, http.StatusCreated, createResp.StatusCode)
	var created quotationBody
	decodeJSON(t, createResp, &created)

	assert.GreaterOrEqual(t, created.Number, 1000)
	assert.Equal(t, "Draft", created.StatusName)
	require.Len(t, created.UsedProducts, 1)
	assert.Equal(t, 14, created.UsedProducts[0].Quantity)
	assert.Equal(t, "0.25", created.UsedProducts[0].ProfitPercentage)

	// 14 × 480,000 × 1.25 + 800,000 × 1.05 = 9,240,000.
	assert.Equal(t, "9240000", created.Summary.Subtotal)

	// List
	listResp := do(t, env.server, "GET", "/v1/quotations?page=1&limit=10", nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var list struct {
		Data  []json.RawMessage `json:"data"`
		Total int               `json:"total"`
	}
	decodeJSON(t, listResp, &list)
	assert.Equal(t, 1, list.Total)
}

func TestE2E_UpdateRowDiscriminator(t *testing.T) {
	env := setupTestEnv(t)
	clientID := env.createClient(t)
	panelID := env.createPanel(t)

	createResp := do(t, env.server, "POST", "/v1/quotations",
		jsonBody(t, map[string]any{
			"client_id":        clientID,
			"project_name":     "Residencial 5.5 kWp",
			"target_power_kwp": 5.5,
			"system_type":      "on-grid",
			"grid_type":        "single-phase",
			"used_products": []map[string]any{
				{"product_type": "panel", "product_id": panelID},
			},
			"items": []map[string]any{
				{"description": "Mano de obra", "category": "labor",
					"unit": "kW", "quantity": 5.5, "unit_price": 350000},
			},
		}), env.token)
	require.Equal(t, http.StatusCreated, createResp.StatusCode)
	var created quotationBody
	decodeJSON(t, createResp, &created)
	require.Len(t, created.UsedProducts, 1)
	require.Len(t, created.Items, 1)
	panelRowID := created.UsedProducts[0].UsedProductID

	// Update: keep the panel row by id, drop the labor item, raise the target.
	updateResp := do(t, env.server, "PUT", "/v1/quotations/"+created.ID,
		jsonBody(t, map[string]any{
			"project_name":     "Residencial ampliada",
			"target_power_kwp": 10,
			"system_type":      "on-grid",
			"grid_type":        "single-phase",
			"used_products": []map[string]any{
				{"used_product_id": panelRowID, "product_type": "panel", "product_id": panelID},
			},
			"items": []map[string]any{},
		}), env.token)
	require.Equal(t, http.StatusOK, updateResp.StatusCode)
	var updated quotationBody
	decodeJSON(t, updateResp, &updated)

	require.Len(t, updated.UsedProducts, 1)
	assert.Equal(t, panelRowID, updated.UsedProducts[0].UsedProductID)
	assert.Equal(t, 25, updated.UsedProducts[0].Quantity) // 10 kWp / 415 W → 25
	assert.Empty(t, updated.Items)
}

func TestE2E_StatusChangeAndRecalculate(t *testing.T) {
	env := setupTestEnv(t)
	clientID := env.createClient(t)
	panelID := env.createPanel(t)

	createResp := do(t, env.server, "POST", "/v1/quotations",
		jsonBody(t, map[string]any{
			"client_id":        clientID,
			"project_name":     "Residencial 5.5 kWp",
			"target_power_kwp": 5.5,
			"system_type":      "on-grid",
			"grid_type":        "single-phase",
			"used_products": []map[string]any{
				{"product_type": "panel", "product_id": panelID},
			},
		}), env.token)
	require.Equal(t, http.StatusCreated, createResp.StatusCode)
	var created quotationBody
	decodeJSON(t, createResp, &created)

	// Accepted (4)
	statusResp := do(t, env.server, "PATCH", "/v1/quotations/"+created.ID+"/status",
		jsonBody(t, map[string]any{"status_id": 4}), env.token)
	assert.Equal(t, http.StatusNoContent, statusResp.StatusCode)

	getResp := do(t, env.server, "GET", "/v1/quotations/"+created.ID, nil, env.token)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var fetched quotationBody
	decodeJSON(t, getResp, &fetched)
	assert.Equal(t, "Accepted", fetched.StatusName)

	// Unknown status id is rejected without touching the record.
	badResp := do(t, env.server, "PATCH", "/v1/quotations/"+created.ID+"/status",
		jsonBody(t, map[string]any{"status_id": 42}), env.token)
	badResp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, badResp.StatusCode)

	// Stateless recalculation.
	recalcResp := do(t, env.server, "POST", "/v1/quotations/recalculate",
		jsonBody(t, map[string]any{
			"used_products": []map[string]any{
				{"quantity": 2, "unit_price": 100, "profit_percentage": 0.5},
			},
		}), env.token)
	require.Equal(t, http.StatusOK, recalcResp.StatusCode)
	var summary struct {
		Subtotal  string `json:"subtotal"`
		Subtotal2 string `json:"subtotal2"`
	}
	decodeJSON(t, recalcResp, &summary)
	assert.Equal(t, "300", summary.Subtotal)
	assert.Equal(t, "309", summary.Subtotal2)
}
