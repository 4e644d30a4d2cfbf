package prompt

// templateFunc renders the instruction for one category.
type templateFunc func(description, style string, extras Extras) string

// BuildInstruction renders the instruction document for req.
//
// Unknown categories fall back to the media type's generate-from-scratch
// template. Anything that is not video is treated as an image request, so
// an unrecognised media value never yields a video template.
func BuildInstruction(req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	extras := req.Extras
	if extras == nil {
		extras = Extras{}
	}

	return templateFor(req.Media, req.Category)(req.Description, req.Style, extras), nil
}

func templateFor(media MediaType, category Category) templateFunc {
	if media == MediaVideo {
		switch category {
		case CategoryVideoGenerate:
			return videoGenerateTemplate
		case CategoryImageToVideo:
			return imageToVideoTemplate
		case CategoryVideoEffects:
			return videoEffectsTemplate
		case CategoryCameraMovement:
			return cameraMovementTemplate
		default:
			return videoGenerateTemplate
		}
	}

	switch category {
	case CategoryFaceTransform:
		return faceTransformTemplate
	case CategoryModify:
		return modifyTemplate
	case CategoryEffects:
		return effectsTemplate
	case CategoryGenerate:
		return generateTemplate
	default:
		return generateTemplate
	}
}

// videoFields are the four fields every video template shares.
type videoFields struct {
	duration  string
	aspect    string
	movement  string
	intensity string
}

func resolveVideoFields(category Category, extras Extras) videoFields {
	d := DefaultExtras(MediaVideo, category)
	return videoFields{
		duration:  extras.get(d[FieldDuration], FieldDuration),
		aspect:    extras.get(d[FieldAspect], FieldAspect),
		movement:  extras.get(d[FieldCameraMovement], FieldCameraMovement),
		intensity: extras.get(d[FieldMotionIntensity], FieldMotionIntensity, fieldIntensity),
	}
}

// DefaultExtras returns the values substituted for absent extra fields.
// The returned map is a fresh copy.
func DefaultExtras(media MediaType, category Category) Extras {
	if media != MediaVideo {
		switch category {
		case CategoryFaceTransform:
			return Extras{FieldTransformation: "", FieldKeepIdentity: "Sí"}
		case CategoryModify:
			return Extras{FieldModificationType: ""}
		case CategoryEffects:
			return Extras{FieldEffectType: ""}
		default:
			return Extras{}
		}
	}

	switch category {
	case CategoryImageToVideo:
		return Extras{
			FieldDuration:        "3s",
			FieldAspect:          "16:9",
			FieldCameraMovement:  "Zoom",
			FieldMotionIntensity: "Baja",
		}
	case CategoryVideoEffects:
		return Extras{
			FieldDuration:   "5s",
			FieldEffectType: "Iluminación",
		}
	case CategoryCameraMovement:
		return Extras{
			FieldDuration:        "5s",
			FieldAspect:          "16:9",
			FieldCameraMovement:  "Dolly",
			FieldMotionIntensity: "Media",
		}
	default:
		return Extras{
			FieldDuration:        "5s",
			FieldAspect:          "16:9",
			FieldCameraMovement:  "Estático",
			FieldMotionIntensity: "Media",
		}
	}
}
