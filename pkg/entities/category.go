package entities

import "fmt"

// Category is the type of problem a ticket is about. The zero value is not a valid category.
type Category int

const (
	categoryUnknown Category = iota

	// CategoryTechSupport is for technical problems or server errors.
	CategoryTechSupport

	// CategoryGeneralQuestions is for questions about how the server works.
	CategoryGeneralQuestions

	// CategoryReportProblem is for reporting inappropriate behaviour or problems.
	CategoryReportProblem

	// CategoryOther is for anything else.
	CategoryOther
)

// Categories lists every category in the order they are offered to the user.
var Categories = []Category{
	CategoryTechSupport,
	CategoryGeneralQuestions,
	CategoryReportProblem,
	CategoryOther,
}

// ParseCategory converts a select menu value into a Category.
func ParseCategory(value string) (Category, error) {
	switch value {
	case "soporte_tecnico":
		return CategoryTechSupport, nil
	case "preguntas_generales":
		return CategoryGeneralQuestions, nil
	case "reportar_problema":
		return CategoryReportProblem, nil
	case "otros":
		return CategoryOther, nil
	default:
		return categoryUnknown, fmt.Errorf("unknown ticket category %q", value)
	}
}

// Value is the select menu value of the category.
func (c Category) Value() string {
	switch c {
	case CategoryTechSupport:
		return "soporte_tecnico"
	case CategoryGeneralQuestions:
		return "preguntas_generales"
	case CategoryReportProblem:
		return "reportar_problema"
	case CategoryOther:
		return "otros"
	default:
		return ""
	}
}

// Prefix is the channel name prefix used once a ticket is tagged with the category.
func (c Category) Prefix() string {
	switch c {
	case CategoryTechSupport:
		return "tech"
	case CategoryGeneralQuestions:
		return "question"
	case CategoryReportProblem:
		return "report"
	case CategoryOther:
		return "other"
	default:
		return ""
	}
}

// Label is the human readable name of the category.
func (c Category) Label() string {
	switch c {
	case CategoryTechSupport:
		return "Soporte Técnico"
	case CategoryGeneralQuestions:
		return "Preguntas Generales"
	case CategoryReportProblem:
		return "Reportar Problema"
	case CategoryOther:
		return "Otros"
	default:
		return ""
	}
}

// Description is shown under the label in the select menu.
func (c Category) Description() string {
	switch c {
	case CategoryTechSupport:
		return "Problemas técnicos o errores del servidor"
	case CategoryGeneralQuestions:
		return "Dudas sobre el funcionamiento del servidor"
	case CategoryReportProblem:
		return "Reportar comportamiento inapropiado o problemas"
	case CategoryOther:
		return "Otro tipo de consulta"
	default:
		return ""
	}
}

// Emoji is the unicode emoji shown next to the category.
func (c Category) Emoji() string {
	switch c {
	case CategoryTechSupport:
		return "🛠️"
	case CategoryGeneralQuestions:
		return "❓"
	case CategoryReportProblem:
		return "⚠️"
	case CategoryOther:
		return "📝"
	default:
		return ""
	}
}

// DisplayLabel is the emoji followed by the label.
func (c Category) DisplayLabel() string {
	if c == categoryUnknown {
		return ""
	}
	return c.Emoji() + " " + c.Label()
}

// String implements the fmt.Stringer interface.
func (c Category) String() string {
	if v := c.Value(); v != "" {
		return v
	}
	return fmt.Sprintf("Category(%d)", int(c))
}
