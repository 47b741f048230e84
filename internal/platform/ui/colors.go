// internal/platform/ui/colors.go
package ui

import "github.com/pterm/pterm"

// Paleta "Cacería" - Inspirada en la persecución nocturna de Laelaps,
// el sabueso que siempre alcanza a su presa, y el zorro teumesio que
// nunca puede ser alcanzado

// Colores primarios
var (
	// BronzeHound - El sabueso de bronce, elementos principales
	BronzeHound = pterm.NewRGB(203, 134, 58)

	// BloodTrail - Rastro de sangre, errores críticos
	BloodTrail = pterm.NewRGB(190, 42, 42)

	// DriedMaroon - Sangre seca, errores graves
	DriedMaroon = pterm.NewRGB(110, 20, 20)

	// QuarryGold - La presa dorada, warnings y descubrimientos importantes
	QuarryGold = pterm.NewRGB(255, 191, 71)

	// StoneGray - La piedra del desenlace, texto secundario
	StoneGray = pterm.NewRGB(99, 99, 99)

	// NightIndigo - El cielo nocturno de Beocia, fondos y separadores
	NightIndigo = pterm.NewRGB(36, 34, 63)

	// MoonlitSilver - Luz de luna sobre el campo, texto principal
	MoonlitSilver = pterm.NewRGB(210, 214, 222)

	// FoxfireOrange - El zorro en fuga, running/active, animaciones
	FoxfireOrange = pterm.NewRGB(255, 121, 44)

	// TwilightViolet - El crepúsculo de la cacería, información secundaria
	TwilightViolet = pterm.NewRGB(106, 90, 205)

	// LaurelGreen - El laurel del cazador, operaciones exitosas
	LaurelGreen = pterm.NewRGB(96, 178, 110)
)

// Estilos preconfigurados para diferentes contextos
var (
	// StylePrimary - Estilo principal para headers y elementos destacados
	StylePrimary = BronzeHound.ToRGBStyle()

	// StyleSuccess - Estilo para operaciones exitosas
	StyleSuccess = LaurelGreen.ToRGBStyle()

	// StyleWarning - Estilo para advertencias
	StyleWarning = QuarryGold.ToRGBStyle()

	// StyleError - Estilo para errores
	StyleError = BloodTrail.ToRGBStyle()

	// StyleCritical - Estilo para errores críticos
	StyleCritical = DriedMaroon.ToRGBStyle()

	// StyleSecondary - Estilo para texto secundario
	StyleSecondary = StoneGray.ToRGBStyle()

	// StyleText - Estilo para texto principal
	StyleText = MoonlitSilver.ToRGBStyle()

	// StyleActive - Estilo para elementos activos/running
	StyleActive = FoxfireOrange.ToRGBStyle()

	// StyleInfo - Estilo para información adicional
	StyleInfo = TwilightViolet.ToRGBStyle()

	// StyleAccent - Estilo para acentos y highlights
	StyleAccent = FoxfireOrange.ToRGBStyle()
)
