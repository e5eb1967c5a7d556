package medline

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(xmlFieldName)
	if err := v.RegisterValidation("enum", isValidEnum); err != nil {
		panic(fmt.Sprintf("medline: register enum validation: %v", err))
	}
	return v
}

// xmlFieldName reports fields by their element or attribute name so error paths
// read like the document.
func xmlFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("xml"), ",")
	if i := strings.LastIndexByte(name, ' '); i >= 0 {
		name = name[i+1:]
	}
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

func isValidEnum(fl validator.FieldLevel) bool {
	e, ok := fl.Field().Interface().(enum)
	return !ok || e.IsValid()
}

// Validate checks v for missing required fields and enum values outside their
// closed sets. It returns the first problem found in document order as a
// *MissingRequiredFieldError or *InvalidEnumValueError.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate: %w", err)
	}
	return fieldError(verrs[0])
}

func fieldError(fe validator.FieldError) error {
	path := fe.Namespace()
	typ := enclosingType(path)

	if fe.Tag() == "enum" {
		return &InvalidEnumValueError{
			Type:      typ,
			Attribute: fe.Field(),
			Value:     fmt.Sprint(fe.Value()),
			Path:      path,
		}
	}
	// required, required_without and min=1 all mean an absent child.
	return &MissingRequiredFieldError{
		Type:  typ,
		Field: fe.Field(),
		Path:  path,
	}
}

// enclosingType extracts the parent element name from a validator namespace such as
// "PubmedArticleSet.PubmedArticle[0].PubmedData.ArticleIdList.ArticleId[0].IdType".
func enclosingType(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) < 2 {
		return ns
	}
	parent := parts[len(parts)-2]
	if i := strings.IndexByte(parent, '['); i >= 0 {
		parent = parent[:i]
	}
	return parent
}
