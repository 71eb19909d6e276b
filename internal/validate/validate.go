package validate

import (
	"errors"
	"fmt"
	"strings"

	"demo/ordertags/internal/model"
)

type multiErr []error

func (m multiErr) Error() string {
	var b strings.Builder
	for i, e := range m {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Error())
	}
	return b.String()
}
func (m multiErr) OrNil() error {
	if len(m) == 0 {
		return nil
	}
	return m
}

// ValidateOrder checks an externally seeded order before it is stored.
// The email is only required, its format is not checked.
func ValidateOrder(o model.Order) error {
	var errs multiErr

	if strings.TrimSpace(o.Code) == "" {
		errs = append(errs, errors.New("code: required"))
	}
	if o.Date.IsZero() {
		errs = append(errs, errors.New("date: required"))
	}
	if o.Email == "" {
		errs = append(errs, errors.New("email: required"))
	}

	return errs.OrNil()
}

// TagInput checks the shape of a create tag request.
func TagInput(in model.TagInput) error {
	if in.TagValue == nil {
		return fmt.Errorf("tag_value: field required")
	}
	return nil
}

// OrderTagInput checks the shape of an associate tag request.
func OrderTagInput(in model.OrderTagInput) error {
	var errs multiErr
	if in.OrderID == nil {
		errs = append(errs, fmt.Errorf("order_id: field required"))
	}
	if in.TagID == nil {
		errs = append(errs, fmt.Errorf("tag_id: field required"))
	}
	return errs.OrNil()
}
