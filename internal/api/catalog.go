package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hagwonlab/academy-api/internal/models"
	"github.com/hagwonlab/academy-api/internal/repository"
	"github.com/hagwonlab/academy-api/internal/service"
)

type createProductRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int    `json:"price"`
	PointsPrice  int    `json:"pointsPrice"`
	Active       *bool  `json:"active"`
	Featured     bool   `json:"featured"`
	DisplayOrder int    `json:"displayOrder"`
}

type updateProductRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Price        *int    `json:"price"`
	PointsPrice  *int    `json:"pointsPrice"`
	Active       *bool   `json:"active"`
	Featured     *bool   `json:"featured"`
	DisplayOrder *int    `json:"displayOrder"`
}

type createPlanRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Currency        string `json:"currency"`
	PriceMinorUnits int    `json:"priceMinorUnits"`
	Features        string `json:"features"`
	Featured        bool   `json:"featured"`
	DisplayOrder    int    `json:"displayOrder"`
	Active          *bool  `json:"active"`
}

type updatePlanRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Currency        *string `json:"currency"`
	PriceMinorUnits *int    `json:"priceMinorUnits"`
	Features        *string `json:"features"`
	Featured        *bool   `json:"featured"`
	DisplayOrder    *int    `json:"displayOrder"`
	Active          *bool   `json:"active"`
}

// handleListProducts serves the storefront. activeOnly defaults to true;
// passing activeOnly=false lists deactivated products as well.
func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if raw := r.URL.Query().Get("activeOnly"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid activeOnly flag")
			return
		}
		activeOnly = parsed
	}

	products, err := s.catalog.ListProducts(r.Context(), activeOnly)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if products == nil {
		products = []models.StoreProduct{}
	}
	writeResource(w, http.StatusOK, "products", products)
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	product, err := s.catalog.CreateProduct(r.Context(), service.CreateProductInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		PointsPrice:  req.PointsPrice,
		Active:       req.Active,
		Featured:     req.Featured,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusCreated, "product", product)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid product id")
		return
	}

	var req updateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	product, err := s.catalog.UpdateProduct(r.Context(), id, repository.ProductUpdate{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		PointsPrice:  req.PointsPrice,
		Active:       req.Active,
		Featured:     req.Featured,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusOK, "product", product)
}

// handleListPlans serves the public pricing page: active plans only.
func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := s.catalog.ListPlans(r.Context(), true)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if plans == nil {
		plans = []models.PricingPlan{}
	}
	writeResource(w, http.StatusOK, "plans", plans)
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var req createPlanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	plan, err := s.catalog.CreatePlan(r.Context(), service.CreatePlanInput{
		Title:           req.Title,
		Description:     req.Description,
		Currency:        req.Currency,
		PriceMinorUnits: req.PriceMinorUnits,
		Features:        req.Features,
		Featured:        req.Featured,
		DisplayOrder:    req.DisplayOrder,
		Active:          req.Active,
	})
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusCreated, "plan", plan)
}

func (s *Server) handleUpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid plan id")
		return
	}

	var req updatePlanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	plan, err := s.catalog.UpdatePlan(r.Context(), id, repository.PlanUpdate{
		Title:           req.Title,
		Description:     req.Description,
		Currency:        req.Currency,
		PriceMinorUnits: req.PriceMinorUnits,
		Features:        req.Features,
		Featured:        req.Featured,
		DisplayOrder:    req.DisplayOrder,
		Active:          req.Active,
	})
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusOK, "plan", plan)
}
