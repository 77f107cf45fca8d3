package ledger

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// notBlank rejects strings made only of whitespace. Stored names are
// trimmed, so such a value would pass Required and persist as "".
// A nil *string passes; pair with Required or NilOrNotEmpty as needed.
var notBlank = validation.By(func(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	default:
		return nil
	}
	if s != "" && strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "cannot be blank")
	}
	return nil
})
