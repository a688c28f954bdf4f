package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/invoiceapi/backend/internal/domain/process"
)

// DocumentTypeTag validates that a field holds a known process document type.
const DocumentTypeTag = "document_type"

// SetupValidator configures gin's validator with field naming and custom tags.
// It is safe to call more than once.
func SetupValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "uri", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return v.RegisterValidation(DocumentTypeTag, validateDocumentType)
}

func validateDocumentType(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return process.DocumentType(fl.Field().String()).IsValid()
}
