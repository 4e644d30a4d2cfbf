package prompt

import (
	"errors"
	"strings"
)

// ErrEmptyDescription is returned when a request carries no usable description.
var ErrEmptyDescription = errors.New("description is empty")

// MediaType selects the family of templates a request is built from.
type MediaType string

const (
	MediaImage MediaType = "imagen"
	MediaVideo MediaType = "video"
)

// ParseMediaType accepts the stored values plus the English "image".
func ParseMediaType(s string) (MediaType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "imagen", "image":
		return MediaImage, true
	case "video":
		return MediaVideo, true
	default:
		return "", false
	}
}

// Category identifies the generation intent within a media type.
type Category string

const (
	// Image categories
	CategoryFaceTransform Category = "face_transform"
	CategoryGenerate      Category = "generate"
	CategoryModify        Category = "modify"
	CategoryEffects       Category = "effects"

	// Video categories
	CategoryVideoGenerate  Category = "video_generate"
	CategoryImageToVideo   Category = "image_to_video"
	CategoryVideoEffects   Category = "video_effects"
	CategoryCameraMovement Category = "camera_movement"
)

// Extras holds category-specific refinements keyed by field name.
type Extras map[string]string

// get returns the value for the first key present, or def.
func (e Extras) get(def string, keys ...string) string {
	for _, k := range keys {
		if v, ok := e[k]; ok {
			return v
		}
	}
	return def
}

// Extra field keys
const (
	FieldTransformation   = "transformacion"
	FieldKeepIdentity     = "mantener_identidad"
	FieldModificationType = "tipo_modificacion"
	FieldEffectType       = "tipo_efecto"
	FieldDuration         = "duracion"
	FieldAspect           = "aspecto"
	FieldCameraMovement   = "movimiento_camara"
	FieldMotionIntensity  = "intensidad_movimiento"

	// fieldIntensity is the short key some callers use for camera movement requests.
	fieldIntensity = "intensidad"
)

// Request is everything needed to build one instruction.
type Request struct {
	Media       MediaType
	Category    Category
	Description string
	Style       string
	Extras      Extras
}

// Validate reports whether the request can be sent.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// Result is the parsed pair of prompts.
type Result struct {
	Positive string `json:"positive"`
	Negative string `json:"negative"`
}
