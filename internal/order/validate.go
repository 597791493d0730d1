package order

import (
	"regexp"
	"strings"

	"github.com/TemirB/bytebazaar/internal/domain"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// normalizeCustomer trims every field and checks it is present and well formed.
func normalizeCustomer(c domain.Customer) (domain.Customer, error) {
	out := domain.Customer{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.TrimSpace(c.Email),
		Phone: strings.TrimSpace(c.Phone),
	}

	switch {
	case out.Name == "":
		return out, &domain.ValidationError{Field: "name", Reason: "is required"}
	case out.Email == "":
		return out, &domain.ValidationError{Field: "email", Reason: "is required"}
	case !emailRe.MatchString(out.Email):
		return out, &domain.ValidationError{Field: "email", Reason: "must look like name@domain.tld"}
	case out.Phone == "":
		return out, &domain.ValidationError{Field: "phone", Reason: "is required"}
	}
	return out, nil
}

func validateLines(lines []RequestLine) error {
	if len(lines) == 0 {
		return &domain.ValidationError{Reason: domain.ErrEmptyCart.Error(), Err: domain.ErrEmptyCart}
	}
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l.ProductID) == "" {
			return &domain.ValidationError{Field: "items", Reason: "product id is required"}
		}
		if _, dup := seen[l.ProductID]; dup {
			return &domain.ValidationError{Field: "items", Reason: "duplicate product " + l.ProductID}
		}
		seen[l.ProductID] = struct{}{}
	}
	return nil
}
