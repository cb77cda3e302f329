package funnel

// Message is a title and body pair.
type Message struct {
	Title string
	Body  string
}

var successes = map[Kind]Message{
	LoanRequest: {
		Title: "Solicitud recibida",
		Body:  "Gracias. Te contactaremos para continuar el flujo de solicitud (100% digital).",
	},
	TesterSignup: {
		Title: "¡Listo! Eres parte del user testing",
		Body:  "Te contactaremos con el acceso a Emony. Gracias por ayudarnos a construir una experiencia simple y segura.",
	},
}

// NextSteps is shown under every success message.
var NextSteps = Message{
	Title: "¿Qué sigue?",
	Body:  "Te contactaremos con los siguientes pasos por tu canal elegido.",
}

// CloseLabel is the label of the button that dismisses the success view.
const CloseLabel = "Cerrar"

// Success returns the completion message of kind.
func Success(kind Kind) Message {
	return successes[kind]
}
