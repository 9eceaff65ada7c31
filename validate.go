package intake

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report violations against the JSON field names the UI sends.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Validate normalizes the payload in place (trimming the required strings
// so whitespace-only input is rejected) and checks every declared
// constraint. On failure it returns a *ValidationError listing all
// violated fields.
func (n *NewDemoRequest) Validate() error {
	n.Name = strings.TrimSpace(n.Name)
	n.Email = strings.TrimSpace(n.Email)
	n.Company = strings.TrimSpace(n.Company)
	n.Role = strings.TrimSpace(n.Role)
	return check(n)
}

// Validate normalizes and checks a contact-message payload.
func (n *NewContactMessage) Validate() error {
	n.Email = strings.TrimSpace(n.Email)
	n.Role = strings.TrimSpace(n.Role)
	return check(n)
}

// Validate normalizes and checks a product payload. IsActive defaults to
// true when the payload omits it.
func (n *NewProduct) Validate() error {
	n.Name = strings.TrimSpace(n.Name)
	n.Slug = strings.TrimSpace(n.Slug)
	n.Price = strings.TrimSpace(n.Price)
	if n.IsActive == nil {
		active := true
		n.IsActive = &active
	}
	return check(n)
}

// Validate normalizes and checks a purchase payload. Status defaults to
// pending when the payload omits it.
func (n *NewPurchase) Validate() error {
	n.UserID = strings.TrimSpace(n.UserID)
	n.ProductID = strings.TrimSpace(n.ProductID)
	n.Amount = strings.TrimSpace(n.Amount)
	if n.Status == "" {
		n.Status = PurchasePending
	}
	return check(n)
}

func check(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:  fe.Field(),
			Reason: reason(fe),
		})
	}
	return &ValidationError{Fields: fields}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Valid email is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "numeric":
		return "must be a numeric string"
	default:
		return fmt.Sprintf("failed %s constraint", fe.Tag())
	}
}
