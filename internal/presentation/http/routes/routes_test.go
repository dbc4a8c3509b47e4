package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/ventes-dashboard/internal/application/service"
	"github.com/sangkips/ventes-dashboard/internal/config"
	"github.com/sangkips/ventes-dashboard/internal/infrastructure/database"
	"github.com/sangkips/ventes-dashboard/internal/infrastructure/repository"
	"github.com/sangkips/ventes-dashboard/internal/presentation/http/handler"
	"github.com/sangkips/ventes-dashboard/pkg/logger"
	"github.com/sangkips/ventes-dashboard/pkg/utils"
	"github.com/xuri/excelize/v2"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	log := logger.Discard()
	cfg := &config.Config{
		App:       config.AppConfig{Name: "ventes-dashboard"},
		Admin:     config.AdminConfig{Username: "admin", Password: "admin123"},
		RateLimit: config.RateLimitConfig{Requests: 3, Duration: 60},
	}

	db, err := database.Open(&config.DatabaseConfig{
		Driver: "sqlite",
		Path:   "file:" + t.Name() + "?mode=memory&cache=shared",
	}, log)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	saleRepo := repository.NewSaleRepository(db)
	productRepo := repository.NewProductRepository(db)
	clientRepo := repository.NewClientRepository(db)

	authService, err := service.NewAuthService(cfg.Admin, utils.NewJWTManager("test-secret", time.Hour), log)
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}

	return Setup(&Handlers{
		Auth:      handler.NewAuthHandler(authService, false),
		Dashboard: handler.NewDashboardHandler(service.NewDashboardService(saleRepo, log)),
		Entry: handler.NewEntryHandler(
			service.NewProductService(productRepo, log),
			service.NewClientService(clientRepo, log),
			service.NewSaleService(saleRepo, productRepo, clientRepo, log),
		),
		Analysis: handler.NewAnalysisHandler(service.NewAnalysisService(saleRepo, log)),
	}, &Deps{Auth: authService, Cfg: cfg, Log: log})
}

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Kind    string          `json:"kind"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) apiResponse {
	t.Helper()
	var resp apiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	if data != nil && len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, data); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
	return resp
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "admin", "password": "admin123"})
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	var data struct {
		AccessToken string `json:"access_token"`
	}
	decode(t, w, &data)
	return data.AccessToken
}

func mustCreate(t *testing.T, r *gin.Engine, token, path string, body any) uint {
	t.Helper()
	w := do(t, r, http.MethodPost, path, token, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST %s: %d %s", path, w.Code, w.Body.String())
	}
	var data struct {
		ID uint `json:"id"`
	}
	decode(t, w, &data)
	return data.ID
}

// seed creates two products, one client and three sales through the API.
func seed(t *testing.T, r *gin.Engine, token string) {
	t.Helper()
	stylo := mustCreate(t, r, token, "/api/v1/entry/products", map[string]any{"nom": "Stylo", "categorie": "Papeterie", "prix_unitaire": 10.0})
	lampe := mustCreate(t, r, token, "/api/v1/entry/products", map[string]any{"nom": "Lampe", "categorie": "Maison", "prix_unitaire": 25.5})
	alice := mustCreate(t, r, token, "/api/v1/entry/clients", map[string]any{"nom": "Alice", "email": "alice@example.com"})

	mustCreate(t, r, token, "/api/v1/entry/sales", map[string]any{"date_vente": "2024-01-05", "produit_id": stylo, "quantite": 3})
	mustCreate(t, r, token, "/api/v1/entry/sales", map[string]any{"date_vente": "2024-02-10", "produit_id": lampe, "client_id": alice, "quantite": 2})
	mustCreate(t, r, token, "/api/v1/entry/sales", map[string]any{"date_vente": "2024-04-01", "produit_id": stylo, "client_id": alice, "quantite": 5})
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health: %d", w.Code)
	}
}

func TestLogin(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "admin", "password": "nope"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad password: %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "admin"})
	resp := decode(t, w, nil)
	if w.Code != http.StatusUnprocessableEntity || !strings.Contains(string(resp.Errors), "password") {
		t.Fatalf("missing password: %d %s", w.Code, w.Body.String())
	}

	token := login(t, r)
	var sess struct {
		Username string `json:"username"`
		State    string `json:"state"`
	}
	w = do(t, r, http.MethodGet, "/api/v1/session", token, nil)
	decode(t, w, &sess)
	if sess.Username != "admin" || sess.State != "logged_in" {
		t.Fatalf("session = %+v", sess)
	}
}

func TestLoginSetsSessionCookie(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "admin", "password": "admin123"})
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "session" || !cookies[0].HttpOnly {
		t.Fatalf("cookies = %+v", cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/filters", nil)
	req.AddCookie(cookies[0])
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("filters with cookie: %d", rec.Code)
	}
}

func TestLoginIsRateLimited(t *testing.T) {
	r := newTestRouter(t)
	var last int
	for i := 0; i < 4; i++ {
		last = do(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "admin", "password": "nope"}).Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("fourth attempt: %d, want 429", last)
	}
}

func TestProtectedRoutesRequireLogin(t *testing.T) {
	r := newTestRouter(t)
	for _, path := range []string{"/api/v1/filters", "/api/v1/overview", "/api/v1/entry/products", "/api/v1/analysis/period"} {
		if w := do(t, r, http.MethodGet, path, "", nil); w.Code != http.StatusUnauthorized {
			t.Fatalf("GET %s: %d, want 401", path, w.Code)
		}
	}
	if w := do(t, r, http.MethodGet, "/api/v1/overview", "forged", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("forged token: %d", w.Code)
	}
}

func TestSaleRoundTrip(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)
	seed(t, r, token)

	var overview struct {
		KPIs struct {
			Total    float64 `json:"total_ventes"`
			Quantity float64 `json:"quantite_vendue"`
			Count    int     `json:"nombre_ventes"`
		} `json:"kpis"`
		Sales struct {
			Items []struct {
				Product string  `json:"produit"`
				Amount  float64 `json:"montant"`
			} `json:"items"`
		} `json:"sales"`
	}
	w := do(t, r, http.MethodGet, "/api/v1/overview?product=Stylo&from=2024-01-01&to=2024-01-31", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("overview: %d %s", w.Code, w.Body.String())
	}
	decode(t, w, &overview)
	if overview.KPIs.Count != 1 || overview.KPIs.Total != 30 || len(overview.Sales.Items) != 1 || overview.Sales.Items[0].Amount != 30 {
		t.Fatalf("overview = %+v", overview)
	}
}

func TestOverviewOutsideRange(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)
	seed(t, r, token)

	var overview struct {
		KPIs map[string]float64 `json:"kpis"`
	}
	w := do(t, r, http.MethodGet, "/api/v1/overview?from=2030-01-01&to=2030-12-31", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("overview: %d", w.Code)
	}
	decode(t, w, &overview)
	for k, v := range overview.KPIs {
		if v != 0 {
			t.Fatalf("kpi %s = %v, want 0", k, v)
		}
	}
}

func TestOverviewUnreadableRangeCoversAllSales(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)
	seed(t, r, token)

	for _, query := range []string{
		"from=garbage&to=2024-01-31",
		"from=2024-13-45&to=2024-12-31",
		"from=2024-01-01&to=31/12/2024",
	} {
		var overview struct {
			KPIs struct {
				Count int `json:"nombre_ventes"`
			} `json:"kpis"`
		}
		w := do(t, r, http.MethodGet, "/api/v1/overview?"+query, token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: %d %s", query, w.Code, w.Body.String())
		}
		decode(t, w, &overview)
		if overview.KPIs.Count != 3 {
			t.Fatalf("%s: count = %d, want 3", query, overview.KPIs.Count)
		}
	}
}

func TestEntryValidation(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	tests := []struct {
		path string
		body map[string]any
	}{
		{"/api/v1/entry/products", map[string]any{"nom": "Stylo", "categorie": "Papeterie"}},
		{"/api/v1/entry/clients", map[string]any{"email": "alice@example.com"}},
		{"/api/v1/entry/sales", map[string]any{"produit_id": 99, "quantite": 1}},
		{"/api/v1/entry/sales", map[string]any{"produit_id": 1, "quantite": 0}},
	}
	for _, tt := range tests {
		w := do(t, r, http.MethodPost, tt.path, token, tt.body)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("POST %s %v: %d %s", tt.path, tt.body, w.Code, w.Body.String())
		}
		if resp := decode(t, w, nil); resp.Kind != "input" {
			t.Fatalf("kind = %q, want input", resp.Kind)
		}
	}
}

func TestQuoteAndFormOptions(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)
	seed(t, r, token)

	var quote struct {
		UnitPrice float64 `json:"prix_unitaire"`
		Amount    float64 `json:"montant"`
	}
	w := do(t, r, http.MethodGet, "/api/v1/entry/sales/quote?produit_id=2&quantite=4", token, nil)
	decode(t, w, &quote)
	if w.Code != http.StatusOK || quote.UnitPrice != 25.5 || quote.Amount != 102 {
		t.Fatalf("quote: %d %+v", w.Code, quote)
	}

	var opts struct {
		Products []struct {
			Label string `json:"label"`
		} `json:"produits"`
		Clients []struct {
			Label string `json:"label"`
		} `json:"clients"`
	}
	w = do(t, r, http.MethodGet, "/api/v1/entry/options", token, nil)
	decode(t, w, &opts)
	if len(opts.Products) != 2 || opts.Products[1].Label != "Lampe - Maison" || opts.Clients[0].Label != "Aucun" {
		t.Fatalf("options = %+v", opts)
	}
}

func TestAnalysis(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)
	seed(t, r, token)

	var period struct {
		Rows []struct {
			Period string  `json:"periode"`
			Amount float64 `json:"montant"`
		} `json:"rows"`
	}
	w := do(t, r, http.MethodGet, "/api/v1/analysis/period?granularity=quarter", token, nil)
	decode(t, w, &period)
	if w.Code != http.StatusOK || len(period.Rows) != 2 || period.Rows[0].Period != "2024Q1" || period.Rows[0].Amount != 81 {
		t.Fatalf("period: %d %+v", w.Code, period)
	}

	var top struct {
		Rows []struct {
			Product  string  `json:"produit"`
			Quantity float64 `json:"quantite"`
		} `json:"rows"`
	}
	w = do(t, r, http.MethodGet, "/api/v1/analysis/top-products?n=1", token, nil)
	decode(t, w, &top)
	if len(top.Rows) != 1 || top.Rows[0].Product != "Stylo" || top.Rows[0].Quantity != 8 {
		t.Fatalf("top: %+v", top)
	}

	var dist struct {
		Rows []map[string]any `json:"rows"`
	}
	w = do(t, r, http.MethodGet, "/api/v1/analysis/distribution?by=client", token, nil)
	decode(t, w, &dist)
	if len(dist.Rows) != 1 || dist.Rows[0]["client"] != "Alice" {
		t.Fatalf("distribution: %+v", dist)
	}

	w = do(t, r, http.MethodGet, "/api/v1/analysis/distribution?category=Inconnue", token, nil)
	if resp := decode(t, w, nil); w.Code != http.StatusUnprocessableEntity || resp.Kind != "validation" {
		t.Fatalf("empty distribution: %d %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/api/v1/analysis/distribution?format=html", token, nil)
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("html: %d %s", w.Code, w.Header().Get("Content-Type"))
	}
}

func TestExport(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)
	seed(t, r, token)

	w := do(t, r, http.MethodGet, "/api/v1/overview/export?category=Maison", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export: %d %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "ventes.xlsx") {
		t.Fatalf("disposition = %q", w.Header().Get("Content-Disposition"))
	}
	f, err := excelize.OpenReader(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[1][2] != "Lampe" {
		t.Fatalf("rows = %v", rows)
	}
}
