package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/markethub/marketplace-service/internal/api/dto"
	"github.com/markethub/marketplace-service/internal/domain"
	"github.com/markethub/marketplace-service/internal/service"
)

// ProductsHandler exposes the listing lifecycle.
type ProductsHandler struct {
	products *service.ProductService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(products *service.ProductService) *ProductsHandler {
	return &ProductsHandler{products: products}
}

// Create handles POST /products.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var product domain.Product
	if err := c.BodyParser(&product); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.products.Submit(c.Context(), &product)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// List handles GET /products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.products.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// ListMine handles GET /myProducts?email=.
func (h *ProductsHandler) ListMine(c *fiber.Ctx) error {
	products, err := h.products.ListByOwner(c.Context(), c.Query("email"))
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// ListAccepted handles GET /api/acceptedProducts.
func (h *ProductsHandler) ListAccepted(c *fiber.Ctx) error {
	products, err := h.products.ListAccepted(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// ListFeatured handles GET /api/featuredProducts.
func (h *ProductsHandler) ListFeatured(c *fiber.Ctx) error {
	products, err := h.products.ListFeatured(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// ListReported handles GET /api/reportedProducts.
func (h *ProductsHandler) ListReported(c *fiber.Ctx) error {
	products, err := h.products.ListReported(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// Search handles GET /searchProducts/:search?page=&size=. Absent or
// non-numeric paging values fall back to page 0 and size 3.
func (h *ProductsHandler) Search(c *fiber.Ctx) error {
	term := c.Params("search")
	if decoded, err := url.PathUnescape(term); err == nil {
		term = decoded
	}

	page := queryInt(c, "page", 0)
	size := queryInt(c, "size", service.DefaultSearchPageSize)

	products, err := h.products.Search(c.Context(), term, page, size)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

func queryInt(c *fiber.Ctx, key string, fallback int64) int64 {
	val, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil {
		return fallback
	}
	return val
}

// Get handles GET /products/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	product, err := h.products.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// Update handles PATCH /products/:id. The three moderation fields are forced
// back to pending regardless of what the body carries.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	var update domain.ProductUpdate
	if err := c.BodyParser(&update); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.products.Edit(c.Context(), id, update)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// SetStatus handles PATCH /api/status/:productId.
func (h *ProductsHandler) SetStatus(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "productId")
	if err != nil {
		return err
	}
	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.products.SetStatus(c.Context(), id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// SetFeatured handles PATCH /api/featured/:productId.
func (h *ProductsHandler) SetFeatured(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "productId")
	if err != nil {
		return err
	}
	var req dto.FeaturedUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.products.SetFeatured(c.Context(), id, req.Featured)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// SetReport handles PATCH /api/report/:productId.
func (h *ProductsHandler) SetReport(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "productId")
	if err != nil {
		return err
	}
	var req dto.ReportUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.products.SetReport(c.Context(), id, req.Report)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// SetVote handles PATCH /api/upvote/:productId.
func (h *ProductsHandler) SetVote(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "productId")
	if err != nil {
		return err
	}
	var req dto.VoteUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.products.SetVote(c.Context(), id, req.Vote)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// Delete handles DELETE /products/:id and DELETE /api/reportedProduct/:productId.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	name := "id"
	if c.Params(name) == "" {
		name = "productId"
	}
	id, err := objectIDParam(c, name)
	if err != nil {
		return err
	}
	res, err := h.products.Delete(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
