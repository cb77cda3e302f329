package page

import (
	"fmt"
	"strings"

	"github.com/emony/landing/internal/funnel"
)

// Section titles double as anchors.
const (
	titleProblem    = "Problema"
	titleHowItWorks = "Cómo funciona"
	titleFeatures   = "Beneficios"
	titleTrust      = "Confianza primero"
	titleModel      = "Modelo de negocio"
)

// routes decides where the two funnels of a variant lead.
type routes struct {
	loan   Action
	tester Action
}

// content is the per-variant copy. Everything else is shared.
type content struct {
	name        string
	heroTitle   string
	heroBody    string
	heroBadge   string
	heroCTAs    func(r routes) []CTA
	trustPrompt string
	modelPrompt string
	routes      routes
}

type stat struct {
	label string
	value string
}

var stats = []stat{
	{"100% digital", "Rápido"},
	{"validación", "Inmediata"},
	{"mvp", "+100 UT"},
}

type feature struct {
	title string
	body  string
}

var features = []feature{
	{"Contrato digital", "Respaldamos cada préstamo, a través de contratos con validez legal."},
	{"Préstamos escalera", "Empieza con S/ 100. Paga puntual y recibe el límite de cada subida hasta S/ 1000."},
	{"Devolución de intereses", "Cada préstamo pagado a tiempo tiene recompensa de los intereses pagados."},
	{"Gana dinero refiriendo", "Por cada persona referida que pague su primer préstamo. Gana S/ 15.00."},
}

var partners = []string{
	"Wichay Continental",
	"STARTUP PERÚ",
	"PRO Innóvate",
	"SciFy",
	"UTEC VENTURES",
	"PECAP",
}

var steps = []feature{
	{"01 Solicita", "Define cuánto y plazos."},
	{"02 Conecta", "Otra persona acepta y envía."},
	{"03 Recibe", "Dinero directo a tu cuenta."},
}

type milestone struct {
	year  string
	goals []string
}

var roadmap = []milestone{
	{"2026", []string{"Validar capital semilla", "Escalar suscripciones en Perú"}},
	{"2027", []string{"Escalamiento regional", "Licencias B2B y expansión LATAM"}},
}

var (
	hybridContent = content{
		name:      "hibrido",
		heroBadge: "Fintech P2P · Perú",
		heroTitle: "Créditos entre personas, simples y seguros",
		heroBody:  "Plataforma fintech P2P que conecta personas para prestar y recibir dinero de forma digital, segura y eficiente.",
		heroCTAs: func(r routes) []CTA {
			return []CTA{
				{Label: "Explora Emony", Action: Redirect(ExternalAppURL)},
				{Label: "Unirme al user testing", Action: r.tester},
			}
		},
		trustPrompt: "¿Necesitas crédito hoy?",
		modelPrompt: "¿Quieres ayudar a mejorar Emony?",
		routes: routes{
			loan:   Redirect(ExternalAppURL),
			tester: OpenModal(funnel.TesterSignup),
		},
	}

	salesContent = content{
		name:      "venta",
		heroBadge: "Solicitud · P2P",
		heroTitle: "Tu crédito entre personas, 100% digital",
		heroBody:  "Define monto y plazo, otra persona acepta y recibes el dinero directo a tu cuenta. Sin bancos de por medio.",
		heroCTAs: func(r routes) []CTA {
			return []CTA{
				{Label: "Solicitar crédito", Action: r.loan},
				{Label: "Explora Emony", Action: Redirect(ExternalAppURL)},
			}
		},
		trustPrompt: "¿Necesitas crédito hoy?",
		modelPrompt: "¿Prefieres probar Emony antes que nadie?",
		routes: routes{
			loan:   OpenModal(funnel.LoanRequest),
			tester: OpenModal(funnel.TesterSignup),
		},
	}

	testingContent = content{
		name:      "testing",
		heroBadge: "Early Access · User Testing",
		heroTitle: "Ayúdanos a construir créditos entre personas",
		heroBody:  "Sé de los primeros en probar Emony. Toma menos de 1 minuto. No spam. Solo acceso y pruebas reales.",
		heroCTAs: func(r routes) []CTA {
			return []CTA{
				{Label: "Quiero ser tester", Action: r.tester},
				{Label: "Explora Emony", Action: Redirect(ExternalAppURL)},
			}
		},
		trustPrompt: "¿Te interesa un crédito cuando lancemos?",
		modelPrompt: "¿Quieres ayudar a mejorar Emony?",
		routes: routes{
			loan:   OpenModal(funnel.TesterSignup),
			tester: OpenModal(funnel.TesterSignup),
		},
	}
)

func init() {
	for _, c := range []content{hybridContent, salesContent, testingContent} {
		register(compose(c))
	}
}

// compose builds a Variant from the shared section builders and c.
func compose(c content) Variant {
	r := c.routes
	return Variant{
		Name:    c.name,
		Brand:   "Emony",
		Tagline: "Créditos P2P, simples y seguros",
		Nav: []NavItem{
			{Label: "Problema", Anchor: Anchor(titleProblem)},
			{Label: "Cómo funciona", Anchor: Anchor(titleHowItWorks)},
			{Label: "Confianza", Anchor: Anchor(titleTrust)},
			{Label: "Modelo", Anchor: Anchor(titleModel)},
		},
		Header: CTA{Label: "Unirme al user testing", Action: r.tester},
		Sections: []Section{
			heroSection(c),
			problemSection(),
			howItWorksSection(),
			featuresSection(),
			trustSection(c),
			modelSection(c),
		},
		Sticky: []CTA{
			{Label: "Tester", Action: r.tester},
			{Label: "Solicitar", Action: r.loan},
		},
		Footer: "Emony P2P · Créditos P2P, simples y seguros",
	}
}

func heroSection(c content) Section {
	var b strings.Builder
	fmt.Fprintf(&b, "`%s`\n\n%s\n\n", c.heroBadge, c.heroBody)
	for _, s := range stats {
		fmt.Fprintf(&b, "- **%s** · %s\n", s.value, s.label)
	}
	return Section{
		ID:    Anchor("inicio"),
		Title: c.heroTitle,
		Body:  b.String(),
		CTAs:  c.heroCTAs(c.routes),
	}
}

func problemSection() Section {
	body := "Más del 60% de los peruanos no accede a crédito formal, y quienes sí lo hacen " +
		"enfrentan procesos burocráticos y altos costos.\n\n" +
		"### Solución\n\n" +
		"Plataforma que conecta personas para prestarse entre sí:\n\n" +
		"- 100% digital y rápida.\n" +
		"- Sin bancos de por medio.\n" +
		"- Validación segura e inmediata.\n"
	return Section{ID: Anchor(titleProblem), Title: titleProblem, Body: body}
}

func howItWorksSection() Section {
	var b strings.Builder
	b.WriteString("Un flujo simple en 3 pasos para solicitar, conectar y recibir.\n\n")
	for _, s := range steps {
		fmt.Fprintf(&b, "- **%s**: %s\n", s.title, s.body)
	}
	b.WriteString("\n**MVP validado con +100 usuarios.**\n")
	return Section{ID: Anchor(titleHowItWorks), Title: titleHowItWorks, Body: b.String()}
}

func featuresSection() Section {
	var b strings.Builder
	for _, f := range features {
		fmt.Fprintf(&b, "- **%s**: %s\n", f.title, f.body)
	}
	b.WriteString("\n### Nos respaldan para respaldarte a ti\n\n")
	b.WriteString(strings.Join(partners, " · "))
	b.WriteString("\n")
	return Section{ID: Anchor(titleFeatures), Title: titleFeatures, Body: b.String()}
}

func trustSection(c content) Section {
	body := "- **Validación segura**: verificamos identidad y datos antes de cada préstamo.\n" +
		"- **Sin bancos**: las personas se prestan directamente entre sí.\n" +
		"- **Modelo transparente**: comisión solo por transacción exitosa.\n\n" +
		"**" + c.trustPrompt + "**\n"
	return Section{
		ID:    Anchor(titleTrust),
		Title: titleTrust,
		Body:  body,
		CTAs:  []CTA{{Label: "Solicitar crédito", Action: c.routes.loan}},
	}
}

func modelSection(c content) Section {
	var b strings.Builder
	b.WriteString("Comisión por transacción exitosa.\n\n")
	b.WriteString("> Usuario A presta S/ 500 · Usuario B devuelve S/ 520\n\n")
	b.WriteString("### Roadmap\n\n")
	for _, m := range roadmap {
		fmt.Fprintf(&b, "- **%s**: %s\n", m.year, strings.Join(m.goals, "; "))
	}
	fmt.Fprintf(&b, "\n**%s**\n", c.modelPrompt)
	return Section{
		ID:    Anchor(titleModel),
		Title: titleModel,
		Body:  b.String(),
		CTAs:  []CTA{{Label: "Unirme al user testing", Action: c.routes.tester}},
	}
}
