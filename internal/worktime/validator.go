package worktime

import (
	"fmt"
	"strings"
)

type Violation struct {
	Field   Field  `json:"field"`
	Message string `json:"message"`
}

// Violations is the complete set of problems found in one day of punches.
// It is returned as an error by ValidatePunches.
type Violations []Violation

func (v Violations) Error() string {
	msgs := make([]string, len(v))
	for i, violation := range v {
		msgs[i] = fmt.Sprintf("%s: %s", violation.Field, violation.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v Violations) Has(field Field) bool {
	for _, violation := range v {
		if violation.Field == field {
			return true
		}
	}
	return false
}

func (v Violations) Fields() []Field {
	fields := make([]Field, 0, len(v))
	for _, violation := range v {
		fields = append(fields, violation.Field)
	}
	return fields
}

// ValidatePunches checks pair completeness, pair ordering and that the
// evening does not start before the dinner return. Every rule runs; the
// result is nil or a Violations listing all of them in rule order.
func ValidatePunches(p Punches) error {
	var violations Violations
	pairs := p.pairs()

	for _, pair := range pairs {
		if (pair.start == nil) == (pair.end == nil) {
			continue
		}
		missing := pair.endField
		if pair.start == nil {
			missing = pair.startField
		}
		violations = append(violations, Violation{
			Field:   missing,
			Message: fmt.Sprintf("%s block requires both %s and %s", pair.block, pair.startField, pair.endField),
		})
	}

	for _, pair := range pairs {
		if pair.start == nil || pair.end == nil {
			continue
		}
		if !pair.start.Before(*pair.end) {
			violations = append(violations, Violation{
				Field:   pair.endField,
				Message: fmt.Sprintf("%s must be after %s", pair.endField, pair.startField),
			})
		}
	}

	if p.LunchReturn != nil && p.ArrivalEvening != nil && p.ArrivalEvening.Before(*p.LunchReturn) {
		violations = append(violations, Violation{
			Field:   FieldArrivalEvening,
			Message: fmt.Sprintf("%s must not be before %s", FieldArrivalEvening, FieldLunchReturn),
		})
	}

	if len(violations) == 0 {
		return nil
	}
	return violations
}
