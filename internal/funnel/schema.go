package funnel

// TotalSteps is the number of steps in every funnel.
const TotalSteps = 3

// Field names. Loan and tester forms share contact and note.
const (
	FieldAmount          = "amount"
	FieldTerm            = "term"
	FieldPurpose         = "purpose"
	FieldNote            = "note"
	FieldChannel         = "channel"
	FieldContact         = "contact"
	FieldName            = "name"
	FieldAgeRange        = "ageRange"
	FieldDevice          = "device"
	FieldUsesFinanceApps = "usesFinanceApps"
)

// Contact channels for the loan form.
const (
	ChannelWhatsApp = "whatsapp"
	ChannelEmail    = "email"
)

// Widget is the kind of control a field is edited with.
type Widget int

const (
	WidgetText   Widget = iota // single line input
	WidgetChoice               // one of a fixed set of options
	WidgetNote                 // free multi-line text
)

// Longest accepted values, in characters.
const (
	MaxTextLen = 80
	MaxNoteLen = 500
)

// Option is one selectable value of a choice field.
type Option struct {
	Value string
	Label string
}

// Field describes one input of a funnel form.
type Field struct {
	Name        string
	Label       string
	Placeholder string
	Hint        string
	Widget      Widget
	Options     []Option
	Default     string
	Step        int
	Numeric     bool

	channelAware bool
}

// For returns the field as it should be presented for the current values.
// The loan contact field follows the selected channel.
func (f Field) For(values Values) Field {
	if !f.channelAware {
		return f
	}
	if values.Get(FieldChannel) == ChannelEmail {
		f.Label = "Email"
		f.Placeholder = "correo@ejemplo.com"
	} else {
		f.Label = "WhatsApp"
		f.Placeholder = "+51 999 999 999"
	}
	return f
}

// MaxLen returns the longest value the field accepts.
func (f Field) MaxLen() int {
	if f.Widget == WidgetNote {
		return MaxNoteLen
	}
	return MaxTextLen
}

// OptionLabel returns the display label for value, or value itself.
func (f Field) OptionLabel(value string) string {
	for _, o := range f.Options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// Notice is a highlighted note shown on the last step of a form.
type Notice struct {
	Title string
	Body  string
}

// Copy is the static text framing a form.
type Copy struct {
	Badge       string
	Title       string
	Subtitle    string
	SubmitLabel string
	Notice      Notice
}

var loanFields = []Field{
	{
		Name:        FieldAmount,
		Label:       "Monto (S/)",
		Placeholder: "Ej. 500",
		Hint:        "Ejemplo del modelo: S/ 500 → S/ 520 (según términos).",
		Widget:      WidgetText,
		Step:        1,
		Numeric:     true,
	},
	{
		Name:   FieldTerm,
		Label:  "Plazo",
		Widget: WidgetChoice,
		Options: []Option{
			{Value: "7", Label: "7 días"},
			{Value: "15", Label: "15 días"},
			{Value: "30", Label: "30 días"},
			{Value: "60", Label: "60 días"},
		},
		Step: 1,
	},
	{
		Name:   FieldPurpose,
		Label:  "¿Para qué lo necesitas?",
		Widget: WidgetChoice,
		Options: []Option{
			{Value: "salud", Label: "Salud"},
			{Value: "estudios", Label: "Estudios"},
			{Value: "emergencia", Label: "Emergencia"},
			{Value: "negocio", Label: "Negocio"},
			{Value: "hogar", Label: "Hogar"},
			{Value: "otro", Label: "Otro"},
		},
		Step: 2,
	},
	{
		Name:        FieldNote,
		Label:       "Detalle opcional",
		Placeholder: "Ej. necesito cubrir un pago esta semana…",
		Widget:      WidgetNote,
		Step:        2,
	},
	{
		Name:   FieldChannel,
		Label:  "Canal de contacto",
		Widget: WidgetChoice,
		Options: []Option{
			{Value: ChannelWhatsApp, Label: "WhatsApp"},
			{Value: ChannelEmail, Label: "Email"},
		},
		Default: ChannelWhatsApp,
		Step:    3,
	},
	{
		Name:         FieldContact,
		Label:        "WhatsApp",
		Placeholder:  "+51 999 999 999",
		Hint:         "Te contactamos para continuar el flujo: 1) Solicita 2) Conecta 3) Recibe.",
		Widget:       WidgetText,
		Step:         3,
		channelAware: true,
	},
}

var testerFields = []Field{
	{
		Name:        FieldName,
		Label:       "Tu nombre",
		Placeholder: "Ej. Abel",
		Widget:      WidgetText,
		Step:        1,
	},
	{
		Name:   FieldAgeRange,
		Label:  "Rango de edad",
		Widget: WidgetChoice,
		Options: []Option{
			{Value: "18-24", Label: "18–24"},
			{Value: "25-30", Label: "25–30"},
			{Value: "31-40", Label: "31–40"},
			{Value: "41+", Label: "41+"},
		},
		Step: 1,
	},
	{
		Name:   FieldDevice,
		Label:  "¿Tu equipo?",
		Widget: WidgetChoice,
		Options: []Option{
			{Value: "android", Label: "Android"},
			{Value: "ios", Label: "iOS"},
		},
		Step: 2,
	},
	{
		Name:        FieldContact,
		Label:       "WhatsApp o Email",
		Placeholder: "Ej. +51 999 999 999 o correo@ejemplo.com",
		Hint:        "Lo usaremos solo para darte el acceso.",
		Widget:      WidgetText,
		Step:        2,
	},
	{
		Name:   FieldUsesFinanceApps,
		Label:  "¿Usas apps financieras?",
		Widget: WidgetChoice,
		Options: []Option{
			{Value: "si", Label: "Sí"},
			{Value: "no", Label: "No"},
		},
		Step: 3,
	},
	{
		Name:        FieldNote,
		Label:       "¿Qué te gustaría que Emony haga mejor?",
		Placeholder: "Ej. validación, claridad de pasos, confianza, costos…",
		Widget:      WidgetNote,
		Step:        3,
	},
}

var copies = map[Kind]Copy{
	LoanRequest: {
		Badge:       "Solicitud · P2P",
		Title:       "Solicitar crédito en Emony",
		Subtitle:    "Define monto y plazo. Te contactamos para continuar el flujo (100% digital).",
		SubmitLabel: "Continuar solicitud",
		Notice: Notice{
			Title: "Transparente y seguro",
			Body:  "Comisión por transacción exitosa. Validación segura e inmediata. Sin bancos de por medio.",
		},
	},
	TesterSignup: {
		Badge:       "Early Access · User Testing",
		Title:       "Sé tester de Emony",
		Subtitle:    "Toma menos de 1 minuto. No spam. Solo acceso y pruebas reales.",
		SubmitLabel: "Quiero ser tester",
		Notice: Notice{
			Title: "Privacidad primero",
			Body:  "Tus datos se usan solo para habilitar el acceso. Puedes solicitar eliminación cuando quieras.",
		},
	},
}

// Fields returns the full ordered schema for kind.
func Fields(kind Kind) []Field {
	switch kind {
	case LoanRequest:
		return loanFields
	case TesterSignup:
		return testerFields
	default:
		return nil
	}
}

// StepFields returns the fields shown on one step of kind.
func StepFields(kind Kind, step int) []Field {
	var out []Field
	for _, f := range Fields(kind) {
		if f.Step == step {
			out = append(out, f)
		}
	}
	return out
}

// FieldByName looks up a field of kind.
func FieldByName(kind Kind, name string) (Field, bool) {
	for _, f := range Fields(kind) {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// CopyFor returns the framing copy of kind.
func CopyFor(kind Kind) Copy {
	return copies[kind]
}
