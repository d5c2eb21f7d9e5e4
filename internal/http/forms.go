package http

import (
	"errors"
	"net/http"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/AFCVentura/Bookstore/internal/entities"
	"github.com/AFCVentura/Bookstore/internal/format"
)

// Forms accept both urlencoded posts and JSON bodies. ID and Version are
// echoed back by edit forms; ID must match the id in the path.

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(formFieldName)
	}
}

// formFieldName reports a struct field under its posted name.
func formFieldName(field reflect.StructField) string {
	for _, key := range []string{"form", "json"} {
		name, _, _ := strings.Cut(field.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// fieldError rejects a form because of one field.
type fieldError struct {
	field   string
	message string
}

func (e *fieldError) Error() string {
	return e.field + " " + e.message
}

const msgBadDate = "must be a date in YYYY-MM-DD form"

type genreForm struct {
	ID      uint   `form:"id" json:"id"`
	Name    string `form:"name" json:"name" binding:"required,min=3,max=60"`
	Version uint   `form:"version" json:"version"`
}

func (f genreForm) entity() entities.Genre {
	return entities.Genre{ID: f.ID, Name: strings.TrimSpace(f.Name), Version: f.Version}
}

type bookForm struct {
	ID      uint    `form:"id" json:"id"`
	Title   string  `form:"title" json:"title" binding:"required,min=1,max=120"`
	Price   float64 `form:"price" json:"price" binding:"gte=0,lte=1000000"`
	GenreID uint    `form:"genre_id" json:"genre_id" binding:"required"`
	Version uint    `form:"version" json:"version"`
}

func (f bookForm) entity() entities.Book {
	return entities.Book{ID: f.ID, Title: strings.TrimSpace(f.Title), Price: f.Price, GenreID: f.GenreID, Version: f.Version}
}

type sellerForm struct {
	ID         uint    `form:"id" json:"id"`
	Name       string  `form:"name" json:"name" binding:"required,min=3,max=60"`
	Email      string  `form:"email" json:"email" binding:"required,email"`
	BirthDate  string  `form:"birth_date" json:"birth_date" binding:"required"`
	BaseSalary float64 `form:"base_salary" json:"base_salary" binding:"gte=0,lte=1000000"`
	Version    uint    `form:"version" json:"version"`
}

func (f sellerForm) entity() (entities.Seller, error) {
	birthDate, err := format.ParseInputDate(f.BirthDate)
	if err != nil {
		return entities.Seller{}, &fieldError{field: "birth_date", message: msgBadDate}
	}
	return entities.Seller{
		ID:         f.ID,
		Name:       strings.TrimSpace(f.Name),
		Email:      strings.TrimSpace(f.Email),
		BirthDate:  birthDate,
		BaseSalary: f.BaseSalary,
		Version:    f.Version,
	}, nil
}

// sellerFormFrom fills the form with a stored seller.
func sellerFormFrom(seller entities.Seller) sellerForm {
	return sellerForm{
		ID:         seller.ID,
		Name:       seller.Name,
		Email:      seller.Email,
		BirthDate:  inputDate(seller.BirthDate),
		BaseSalary: seller.BaseSalary,
		Version:    seller.Version,
	}
}

type saleForm struct {
	ID       uint    `form:"id" json:"id"`
	Date     string  `form:"date" json:"date" binding:"required"`
	Amount   float64 `form:"amount" json:"amount" binding:"gte=0,lte=1000000"`
	SellerID uint    `form:"seller_id" json:"seller_id" binding:"required"`
	BookIDs  []uint  `form:"book_ids" json:"book_ids"`
	Version  uint    `form:"version" json:"version"`
}

// saleFormFrom fills the form with a stored sale and its books.
func saleFormFrom(sale entities.Sale) saleForm {
	bookIDs := lo.Map(sale.Books, func(book entities.Book, _ int) uint { return book.ID })
	return saleForm{
		ID:       sale.ID,
		Date:     inputDate(sale.Date),
		Amount:   sale.Amount,
		SellerID: sale.SellerID,
		BookIDs:  bookIDs,
		Version:  sale.Version,
	}
}

// HasBook reports whether the form selects the book, for checkbox state.
func (f saleForm) HasBook(id uint) bool {
	return slices.Contains(f.BookIDs, id)
}

func inputDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

func (f saleForm) date() (time.Time, error) {
	date, err := format.ParseInputDate(f.Date)
	if err != nil {
		return time.Time{}, &fieldError{field: "date", message: msgBadDate}
	}
	return date, nil
}

// validationDetails turns binding errors into one message per posted field.
// Errors that belong to no field are reported under "form".
func validationDetails(err error) map[string]string {
	var fieldErr *fieldError
	if errors.As(err, &fieldErr) {
		return map[string]string{fieldErr.field: fieldErr.message}
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return map[string]string{"form": err.Error()}
	}
	details := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		details[e.Field()] = e.Tag()
	}
	return details
}

// formError answers a rejected form: JSON clients get 400 with details,
// browsers get the form again with the errors shown.
func (r responder) formError(c *gin.Context, name string, data gin.H, err error) {
	if wantsJSON(c) {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Error:     "validation failed",
			Code:      CodeValidationError,
			Details:   validationDetails(err),
			RequestID: GetRequestID(c),
		})
		return
	}
	data["Errors"] = validationDetails(err)
	r.page(c, http.StatusUnprocessableEntity, name, data)
	c.Abort()
}
