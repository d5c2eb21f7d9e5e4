package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AFCVentura/Bookstore/internal/entities"
)

const entitySeller = "seller"

// SellerDetails is the seller detail view: the seller with every sale, plus
// the two highlight projections.
type SellerDetails struct {
	*entities.Seller
	RecentSales  []entities.Sale `json:"recent_sales"`
	BiggestSales []entities.Sale `json:"biggest_sales"`
	TotalSold    float64         `json:"total_sold"`
}

func newSellerDetails(seller *entities.Seller) SellerDetails {
	return SellerDetails{
		Seller:       seller,
		RecentSales:  seller.RecentSales(),
		BiggestSales: seller.BiggestSales(),
		TotalSold:    seller.TotalSold(),
	}
}

// SellersController serves the seller pages and their JSON equivalents.
type SellersController struct {
	responder
	store SellerStore
	audit AuditLogger
}

func NewSellersController(store SellerStore, auditLogger AuditLogger, flash FlashStore) *SellersController {
	return &SellersController{
		responder: responder{flash: flash},
		store:     store,
		audit:     auditOrNop(auditLogger),
	}
}

// RegisterRoutes mounts the seller routes on router.
func (sc *SellersController) RegisterRoutes(router gin.IRouter) {
	router.GET("/sellers", sc.Index)
	router.GET("/sellers/new", sc.New)
	router.POST("/sellers", sc.Create)
	router.GET("/sellers/:id", sc.Details)
	router.GET("/sellers/:id/edit", sc.Edit)
	router.POST("/sellers/:id/edit", sc.Update)
	router.GET("/sellers/:id/delete", sc.ConfirmDelete)
	router.POST("/sellers/:id/delete", sc.Delete)
}

// Index lists every seller with a summary of their sales.
// GET /sellers
func (sc *SellersController) Index(c *gin.Context) {
	sellers, err := sc.store.FindAll(dbSession(c))
	if err != nil {
		sc.internalError(c, err, "list sellers")
		return
	}
	sc.show(c, http.StatusOK, "sellers_index",
		gin.H{"sellers": sellers, "count": len(sellers)},
		gin.H{"Sellers": sellers})
}

// New renders an empty seller form.
// GET /sellers/new
func (sc *SellersController) New(c *gin.Context) {
	sc.page(c, http.StatusOK, "sellers_form", gin.H{"Seller": sellerForm{}})
}

// Create stores a new seller.
// POST /sellers
func (sc *SellersController) Create(c *gin.Context) {
	var form sellerForm
	if err := c.ShouldBind(&form); err != nil {
		sc.formError(c, "sellers_form", gin.H{"Seller": form}, err)
		return
	}
	seller, err := form.entity()
	if err != nil {
		sc.formError(c, "sellers_form", gin.H{"Seller": form}, err)
		return
	}

	err = sc.store.Insert(dbSession(c), &seller)
	sc.audit.LogCreate(c.Request.Context(), auditOrigin(c), entitySeller, seller.ID, err)
	if err != nil {
		sc.repositoryError(c, err, "")
		return
	}
	sc.done(c, http.StatusCreated, seller, "/sellers", "Seller created")
}

// Details shows a seller with their latest and biggest sales.
// GET /sellers/:id
func (sc *SellersController) Details(c *gin.Context) {
	seller, ok := sc.findSeller(c, true)
	if !ok {
		return
	}
	details := newSellerDetails(seller)
	sc.show(c, http.StatusOK, "sellers_details", details, gin.H{"Seller": details})
}

// Edit renders the form for an existing seller.
// GET /sellers/:id/edit
func (sc *SellersController) Edit(c *gin.Context) {
	if seller, ok := sc.findSeller(c, false); ok {
		sc.show(c, http.StatusOK, "sellers_form", seller, gin.H{"Seller": sellerFormFrom(*seller)})
	}
}

// ConfirmDelete asks for confirmation before deleting a seller.
// GET /sellers/:id/delete
func (sc *SellersController) ConfirmDelete(c *gin.Context) {
	if seller, ok := sc.findSeller(c, true); ok {
		sc.show(c, http.StatusOK, "sellers_delete", seller, gin.H{"Seller": seller})
	}
}

func (sc *SellersController) findSeller(c *gin.Context, eager bool) (*entities.Seller, bool) {
	id, ok := sc.parseIDParam(c, "id")
	if !ok {
		return nil, false
	}

	find := sc.store.FindByID
	if eager {
		find = sc.store.FindByIDEager
	}
	seller, err := find(dbSession(c), id)
	if err != nil {
		sc.internalError(c, err, "find seller")
		return nil, false
	}
	if seller == nil {
		sc.fail(c, http.StatusNotFound, CodeNotFound, msgIDNotFound)
		return nil, false
	}
	return seller, true
}

// Update overwrites a seller with the posted form.
// POST /sellers/:id/edit
func (sc *SellersController) Update(c *gin.Context) {
	id, ok := sc.parseIDParam(c, "id")
	if !ok {
		return
	}

	var form sellerForm
	if err := c.ShouldBind(&form); err != nil {
		sc.formError(c, "sellers_form", gin.H{"Seller": form}, err)
		return
	}
	if form.ID != id {
		sc.fail(c, http.StatusBadRequest, CodeInvalidRequest, msgIDMismatch)
		return
	}
	seller, err := form.entity()
	if err != nil {
		sc.formError(c, "sellers_form", gin.H{"Seller": form}, err)
		return
	}

	err = sc.store.Update(dbSession(c), &seller)
	sc.audit.LogUpdate(c.Request.Context(), auditOrigin(c), entitySeller, id, err)
	if err != nil {
		sc.repositoryError(c, err, "")
		return
	}
	sc.done(c, http.StatusOK, seller, "/sellers/"+strconv.FormatUint(uint64(id), 10), "Seller updated")
}

// Delete removes a seller. A seller who still has sales is kept.
// POST /sellers/:id/delete
func (sc *SellersController) Delete(c *gin.Context) {
	id, ok := sc.parseIDParam(c, "id")
	if !ok {
		return
	}

	err := sc.store.Remove(dbSession(c), id)
	sc.audit.LogDelete(c.Request.Context(), auditOrigin(c), entitySeller, id, err)
	if err != nil {
		sc.repositoryError(c, err, "Can't delete this seller because they have sales")
		return
	}
	sc.done(c, http.StatusOK, SuccessResponse{Message: "Seller deleted"}, "/sellers", "Seller deleted")
}
