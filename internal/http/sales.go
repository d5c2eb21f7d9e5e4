package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AFCVentura/Bookstore/internal/entities"
)

const entitySale = "sale"

var errUnknownSeller = &fieldError{field: "seller_id", message: "does not name a registered seller"}

// SalesController serves the sale pages and their JSON equivalents.
type SalesController struct {
	responder
	store   SaleStore
	sellers SellerLister
	books   BookLister
	audit   AuditLogger
}

func NewSalesController(store SaleStore, sellers SellerLister, books BookLister, auditLogger AuditLogger, flash FlashStore) *SalesController {
	return &SalesController{
		responder: responder{flash: flash},
		store:     store,
		sellers:   sellers,
		books:     books,
		audit:     auditOrNop(auditLogger),
	}
}

// RegisterRoutes mounts the sale routes on router.
func (sc *SalesController) RegisterRoutes(router gin.IRouter) {
	router.GET("/sales", sc.Index)
	router.GET("/sales/new", sc.New)
	router.POST("/sales", sc.Create)
	router.GET("/sales/:id", sc.Details)
	router.GET("/sales/:id/edit", sc.Edit)
	router.POST("/sales/:id/edit", sc.Update)
	router.GET("/sales/:id/delete", sc.ConfirmDelete)
	router.POST("/sales/:id/delete", sc.Delete)
}

// Index lists every sale in the order named by ?sort=, newest first by default.
// GET /sales
func (sc *SalesController) Index(c *gin.Context) {
	sales, err := sc.store.FindAll(dbSession(c))
	if err != nil {
		sc.internalError(c, err, "list sales")
		return
	}

	order := entities.ParseSaleOrder(c.Query("sort"))
	entities.SortSales(sales, order)

	sc.show(c, http.StatusOK, "sales_index",
		gin.H{"sales": sales, "count": len(sales), "sort": order},
		gin.H{
			"Sales":      sales,
			"Sort":       order,
			"DateSort":   order.Toggle(entities.SaleOrderDateAsc, entities.SaleOrderDateDesc),
			"AmountSort": order.Toggle(entities.SaleOrderAmountAsc, entities.SaleOrderAmountDesc),
			"SellerSort": order.Toggle(entities.SaleOrderSellerAsc, entities.SaleOrderSellerDesc),
		})
}

// formData loads the seller and book pickers; it responds itself on failure.
func (sc *SalesController) formData(c *gin.Context, form saleForm) (gin.H, bool) {
	s := dbSession(c)
	sellers, err := sc.sellers.FindAll(s)
	if err != nil {
		sc.internalError(c, err, "list sellers")
		return nil, false
	}
	books, err := sc.books.FindAll(s)
	if err != nil {
		sc.internalError(c, err, "list books")
		return nil, false
	}
	return gin.H{"Sale": form, "Sellers": sellers, "Books": books}, true
}

// New renders an empty sale form.
// GET /sales/new
func (sc *SalesController) New(c *gin.Context) {
	data, ok := sc.formData(c, saleForm{})
	if !ok {
		return
	}
	sc.page(c, http.StatusOK, "sales_form", data)
}

// Create stores a new sale for the selected seller and books.
// POST /sales
func (sc *SalesController) Create(c *gin.Context) {
	var form saleForm
	if err := c.ShouldBind(&form); err != nil {
		sc.rejectForm(c, form, err)
		return
	}
	sale, ok := sc.resolve(c, form)
	if !ok {
		return
	}

	err := sc.store.Insert(dbSession(c), sale)
	sc.audit.LogCreate(c.Request.Context(), auditOrigin(c), entitySale, sale.ID, err)
	if err != nil {
		sc.repositoryError(c, err, "")
		return
	}
	sc.done(c, http.StatusCreated, sale, "/sales", "Sale registered")
}

// resolve turns the posted ids into a sale. Unknown book ids are dropped; an
// unknown seller sends the form back.
func (sc *SalesController) resolve(c *gin.Context, form saleForm) (*entities.Sale, bool) {
	date, err := form.date()
	if err != nil {
		sc.rejectForm(c, form, err)
		return nil, false
	}

	s := dbSession(c)
	seller, err := sc.sellers.FindByID(s, form.SellerID)
	if err != nil {
		sc.internalError(c, err, "find seller")
		return nil, false
	}
	if seller == nil {
		sc.rejectForm(c, form, errUnknownSeller)
		return nil, false
	}

	books, err := sc.books.FindByIDs(s, form.BookIDs)
	if err != nil {
		sc.internalError(c, err, "find books")
		return nil, false
	}

	return &entities.Sale{
		ID:       form.ID,
		Date:     date,
		Amount:   form.Amount,
		SellerID: seller.ID,
		Seller:   seller,
		Books:    books,
		Version:  form.Version,
	}, true
}

func (sc *SalesController) rejectForm(c *gin.Context, form saleForm, err error) {
	if wantsJSON(c) {
		sc.formError(c, "sales_form", gin.H{}, err)
		return
	}
	data, ok := sc.formData(c, form)
	if !ok {
		return
	}
	sc.formError(c, "sales_form", data, err)
}

// Details shows a sale with its seller and books.
// GET /sales/:id
func (sc *SalesController) Details(c *gin.Context) {
	if sale, ok := sc.findSale(c); ok {
		sc.show(c, http.StatusOK, "sales_details", sale, gin.H{"Sale": sale})
	}
}

// Edit renders the form for an existing sale.
// GET /sales/:id/edit
func (sc *SalesController) Edit(c *gin.Context) {
	sale, ok := sc.findSale(c)
	if !ok {
		return
	}
	if wantsJSON(c) {
		c.JSON(http.StatusOK, sale)
		return
	}
	data, ok := sc.formData(c, saleFormFrom(*sale))
	if !ok {
		return
	}
	sc.page(c, http.StatusOK, "sales_form", data)
}

// ConfirmDelete asks for confirmation before deleting a sale.
// GET /sales/:id/delete
func (sc *SalesController) ConfirmDelete(c *gin.Context) {
	if sale, ok := sc.findSale(c); ok {
		sc.show(c, http.StatusOK, "sales_delete", sale, gin.H{"Sale": sale})
	}
}

func (sc *SalesController) findSale(c *gin.Context) (*entities.Sale, bool) {
	id, ok := sc.parseIDParam(c, "id")
	if !ok {
		return nil, false
	}
	sale, err := sc.store.FindByIDEager(dbSession(c), id)
	if err != nil {
		sc.internalError(c, err, "find sale")
		return nil, false
	}
	if sale == nil {
		sc.fail(c, http.StatusNotFound, CodeNotFound, msgIDNotFound)
		return nil, false
	}
	return sale, true
}

// Update overwrites a sale, including its book set, with the posted form.
// POST /sales/:id/edit
func (sc *SalesController) Update(c *gin.Context) {
	id, ok := sc.parseIDParam(c, "id")
	if !ok {
		return
	}

	var form saleForm
	if err := c.ShouldBind(&form); err != nil {
		sc.rejectForm(c, form, err)
		return
	}
	if form.ID != id {
		sc.fail(c, http.StatusBadRequest, CodeInvalidRequest, msgIDMismatch)
		return
	}
	sale, ok := sc.resolve(c, form)
	if !ok {
		return
	}

	err := sc.store.Update(dbSession(c), sale)
	sc.audit.LogUpdate(c.Request.Context(), auditOrigin(c), entitySale, id, err)
	if err != nil {
		sc.repositoryError(c, err, "")
		return
	}
	sc.done(c, http.StatusOK, sale, "/sales/"+strconv.FormatUint(uint64(id), 10), "Sale updated")
}

// Delete removes a sale together with its book links.
// POST /sales/:id/delete
func (sc *SalesController) Delete(c *gin.Context) {
	id, ok := sc.parseIDParam(c, "id")
	if !ok {
		return
	}

	err := sc.store.Remove(dbSession(c), id)
	sc.audit.LogDelete(c.Request.Context(), auditOrigin(c), entitySale, id, err)
	if err != nil {
		sc.repositoryError(c, err, "")
		return
	}
	sc.done(c, http.StatusOK, SuccessResponse{Message: "Sale deleted"}, "/sales", "Sale deleted")
}
