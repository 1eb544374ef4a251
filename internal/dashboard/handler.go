package dashboard

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	httperr "github.com/storepulse/storepulse/internal/core/errors"
	"github.com/storepulse/storepulse/internal/core/product"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	msgNoData     = "Product data is temporarily unavailable"
	msgLoadFailed = "Failed to load product data"
)

// chartPages maps chart page routes to their titles.
var chartPages = map[string]string{
	"chart1": "Prices",
	"chart2": "Categories",
}

// Handler serves the dashboard pages and JSON endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	if svc == nil {
		panic("dashboard: service must not be nil")
	}
	return &Handler{svc: svc}
}

// RegisterRoutes registers the dashboard routes.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.DashboardPage)
	r.GET("/chart1", h.ChartsPage("chart1"))
	r.GET("/chart2", h.ChartsPage("chart2"))

	r.GET("/api/products", h.ListProducts)
	r.GET("/v1/dashboard", h.GetDashboard)
	r.GET("/v1/charts", h.GetCharts)
}

// DashboardPage renders the overview page. Load failures render an empty state.
func (h *Handler) DashboardPage(c *gin.Context) {
	payload, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		slog.Error("[Dashboard] Rendering empty dashboard", "error", err)
		payload = EmptyPayload()
	}

	h.render(c, "dashboard.html", gin.H{
		"Payload": payload,
		"JSON":    mustJSONTemplateJS(payload),
	})
}

// ChartsPage renders one of the chart pages.
func (h *Handler) ChartsPage(page string) gin.HandlerFunc {
	title := chartPages[page]
	return func(c *gin.Context) {
		data, err := h.svc.Charts(c.Request.Context())
		if err != nil {
			slog.Error("[Dashboard] Rendering empty chart page", "page", page, "error", err)
			data = EmptyChartsPayload()
		}

		h.render(c, "charts.html", gin.H{
			"Page":  page,
			"Title": title,
			"JSON":  mustJSONTemplateJS(data),
		})
	}
}

// ListProducts handles GET /api/products.
func (h *Handler) ListProducts(c *gin.Context) {
	products, ok := loadJSON(c, func(ctx context.Context) ([]product.Product, error) {
		snap, err := h.svc.Load(ctx)
		return snap.Products, err
	})
	if !ok {
		return
	}
	if products == nil {
		products = []product.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// GetDashboard handles GET /v1/dashboard.
func (h *Handler) GetDashboard(c *gin.Context) {
	payload, ok := loadJSON(c, h.svc.Dashboard)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, payload)
}

// GetCharts handles GET /v1/charts.
func (h *Handler) GetCharts(c *gin.Context) {
	data, ok := loadJSON(c, h.svc.Charts)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, data)
}

// loadJSON runs load and writes the error response when it fails.
func loadJSON[T any](c *gin.Context, load func(context.Context) (T, error)) (T, bool) {
	v, err := load(c.Request.Context())
	if err == nil {
		return v, true
	}

	if errors.Is(err, ErrNoData) {
		slog.Error("[Dashboard] No data for request", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusServiceUnavailable, httperr.ErrorResponse{
			ErrorType: httperr.HttpNoDataError,
			Message:   msgNoData,
		})
		return v, false
	}

	slog.Error("[Dashboard] Request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
		ErrorType: httperr.HttpInternalError,
		Message:   msgLoadFailed,
	})
	return v, false
}

func (h *Handler) render(c *gin.Context, name string, data gin.H) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("[Dashboard] Template error", "template", name, "error", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// mustJSONTemplateJS encodes v for a <script> block. encoding/json escapes
// <, > and & so the output cannot close the script element.
func mustJSONTemplateJS(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		slog.Error("[Dashboard] JSON marshal error for template data", "error", err)
		return template.JS("null")
	}
	return template.JS(b)
}
