package prompt

import "strings"

// Option pairs a display label with the value sent to the model.
type Option struct {
	Label string
	Value string
}

var imageCategories = []Option{
	{Label: "🎭 Transformación de Rostro", Value: string(CategoryFaceTransform)},
	{Label: "🖼️ Generación desde Cero", Value: string(CategoryGenerate)},
	{Label: "🎨 Modificación de Imagen", Value: string(CategoryModify)},
	{Label: "✨ Efectos Especiales", Value: string(CategoryEffects)},
}

var videoCategories = []Option{
	{Label: "🎬 Generación desde Cero", Value: string(CategoryVideoGenerate)},
	{Label: "🖼️➡️🎬 Imagen a Video", Value: string(CategoryImageToVideo)},
	{Label: "✨ Efectos y Transiciones", Value: string(CategoryVideoEffects)},
	{Label: "🎥 Movimientos de Cámara", Value: string(CategoryCameraMovement)},
}

var styles = []Option{
	{Label: "📸 Realista/Fotográfico", Value: "realista/fotográfico"},
	{Label: "🎨 Artístico/Digital Art", Value: "artístico/digital art"},
	{Label: "🌸 Anime/Manga", Value: "anime/manga"},
	{Label: "🎮 3D/Render", Value: "3D/render"},
	{Label: "🖼️ Pintura Clásica", Value: "pintura clásica"},
	{Label: "🎬 Cinematográfico", Value: "cinematográfico"},
	{Label: "✨ Auto-detectar", Value: "auto-detectar el mejor estilo"},
}

// DefaultStyle is the style preselected by the front ends.
const DefaultStyle = "auto-detectar el mejor estilo"

// Categories lists the categories of a media type in display order.
func Categories(media MediaType) []Option {
	src := imageCategories
	if media == MediaVideo {
		src = videoCategories
	}
	return append([]Option(nil), src...)
}

// DefaultCategory is the generate-from-scratch category of a media type.
func DefaultCategory(media MediaType) Category {
	if media == MediaVideo {
		return CategoryVideoGenerate
	}
	return CategoryGenerate
}

// Styles lists the available styles in display order.
func Styles() []Option {
	return append([]Option(nil), styles...)
}

// CategoryLabel returns the display label of a category, or the raw value.
func CategoryLabel(media MediaType, category Category) string {
	return labelOf(Categories(media), string(category))
}

// StyleLabel returns the display label of a style value, or the raw value.
func StyleLabel(style string) string {
	return labelOf(styles, style)
}

// ParseCategory resolves either a category value or its label.
func ParseCategory(media MediaType, s string) (Category, bool) {
	return Category(valueOf(Categories(media), s)), hasOption(Categories(media), s)
}

// ParseStyle resolves either a style value or its label. Unknown styles are
// passed through so callers can send free-form styles.
func ParseStyle(s string) string {
	return valueOf(styles, s)
}

func labelOf(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func valueOf(opts []Option, s string) string {
	s = strings.TrimSpace(s)
	for _, o := range opts {
		if o.Value == s || o.Label == s {
			return o.Value
		}
	}
	return s
}

func hasOption(opts []Option, s string) bool {
	s = strings.TrimSpace(s)
	for _, o := range opts {
		if o.Value == s || o.Label == s {
			return true
		}
	}
	return false
}

// Field describes one category-specific input the front ends render.
type Field struct {
	Key     string
	Label   string
	Options []string
	Default string
}

// DurationCustom is the duration option that takes free text.
const DurationCustom = "Personalizado"

var (
	inputTransformation = Field{
		Key:     FieldTransformation,
		Label:   "🎭 Tipo de transformación",
		Options: []string{"Disfraz/Vestuario", "Cambio de Edad", "Cambio de Estilo", "Maquillaje/Efectos", "Otro"},
		Default: "Disfraz/Vestuario",
	}
	inputKeepIdentity = Field{
		Key:     FieldKeepIdentity,
		Label:   "👤 ¿Mantener identidad facial?",
		Options: []string{"Sí", "No"},
		Default: "Sí",
	}
	inputModification = Field{
		Key:     FieldModificationType,
		Label:   "🎨 Tipo de modificación",
		Options: []string{"Cambio de Fondo", "Agregar Elementos", "Eliminar Elementos", "Reemplazar Objetos", "Otro"},
		Default: "Cambio de Fondo",
	}
	inputImageEffect = Field{
		Key:     FieldEffectType,
		Label:   "✨ Tipo de efecto",
		Options: []string{"Iluminación", "Clima/Atmósfera", "Hora del Día", "Color Grading", "Partículas/Humo", "Otro"},
		Default: "Iluminación",
	}
	inputDuration = Field{
		Key:     FieldDuration,
		Label:   "⏱️ Duración",
		Options: []string{"3s", "5s", "10s", "30s", "1min", DurationCustom},
		Default: "5s",
	}
	inputAspect = Field{
		Key:     FieldAspect,
		Label:   "📐 Relación de aspecto",
		Options: []string{"16:9 (Horizontal)", "9:16 (Vertical)", "1:1 (Cuadrado)", "4:3 (Clásico)"},
		Default: "16:9 (Horizontal)",
	}
	inputCameraMovement = Field{
		Key:     FieldCameraMovement,
		Label:   "🎥 Movimiento de cámara",
		Options: []string{"Estático", "Paneo (Izq/Der)", "Zoom (Acercar/Alejar)", "Dolly", "Tracking"},
		Default: "Estático",
	}
	inputIntensity = Field{
		Key:     FieldMotionIntensity,
		Label:   "💫 Intensidad de movimiento",
		Options: []string{"Baja", "Media", "Alta"},
		Default: "Media",
	}
	inputVideoEffect = Field{
		Key:     FieldEffectType,
		Label:   "✨ Tipo de efecto",
		Options: []string{"Iluminación", "Clima", "Transición", "Color Grading", "Partículas"},
		Default: "Iluminación",
	}
)

// Fields returns the inputs a category offers, in display order.
func Fields(media MediaType, category Category) []Field {
	if media == MediaVideo {
		fields := []Field{inputDuration, inputAspect, inputCameraMovement, inputIntensity}
		if category == CategoryVideoEffects {
			fields = append(fields, inputVideoEffect)
		}
		return fields
	}

	switch category {
	case CategoryFaceTransform:
		return []Field{inputTransformation, inputKeepIdentity}
	case CategoryModify:
		return []Field{inputModification}
	case CategoryEffects:
		return []Field{inputImageEffect}
	default:
		return nil
	}
}

// AspectRatio keeps only the ratio of an aspect option ("16:9 (Horizontal)" -> "16:9").
func AspectRatio(option string) string {
	option = strings.TrimSpace(option)
	if i := strings.IndexByte(option, ' '); i >= 0 {
		return option[:i]
	}
	return option
}

// Duration resolves the duration selection. The custom option uses the
// free-text value, falling back to 5s when it is blank.
func Duration(selected, custom string) string {
	if selected != DurationCustom {
		return selected
	}
	if c := strings.TrimSpace(custom); c != "" {
		return c
	}
	return "5s"
}
