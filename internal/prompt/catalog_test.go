package prompt

import "testing"

func TestParseMediaType(t *testing.T) {
	tests := []struct {
		in     string
		want   MediaType
		wantOK bool
	}{
		{"imagen", MediaImage, true},
		{"Image", MediaImage, true},
		{" video ", MediaVideo, true},
		{"audio", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseMediaType(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseMediaType(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name   string
		media  MediaType
		in     string
		want   Category
		wantOK bool
	}{
		{"value", MediaImage, "modify", CategoryModify, true},
		{"label", MediaVideo, "🎥 Movimientos de Cámara", CategoryCameraMovement, true},
		{"wrong media", MediaImage, "camera_movement", CategoryCameraMovement, false},
		{"unknown", MediaVideo, "slowmo", "slowmo", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCategory(tt.media, tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseCategory() = %q, %v, want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLabels(t *testing.T) {
	if got := CategoryLabel(MediaVideo, CategoryImageToVideo); got != "🖼️➡️🎬 Imagen a Video" {
		t.Errorf("CategoryLabel() = %q", got)
	}
	if got := CategoryLabel(MediaImage, "custom"); got != "custom" {
		t.Errorf("CategoryLabel() for unknown = %q, want raw value", got)
	}
	if got := StyleLabel(DefaultStyle); got != "✨ Auto-detectar" {
		t.Errorf("StyleLabel() = %q", got)
	}
	if got := ParseStyle("🌸 Anime/Manga"); got != "anime/manga" {
		t.Errorf("ParseStyle(label) = %q", got)
	}
	if got := ParseStyle("acuarela"); got != "acuarela" {
		t.Errorf("ParseStyle(free form) = %q", got)
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		media    MediaType
		category Category
		wantKeys []string
	}{
		{MediaImage, CategoryFaceTransform, []string{FieldTransformation, FieldKeepIdentity}},
		{MediaImage, CategoryGenerate, nil},
		{MediaImage, CategoryModify, []string{FieldModificationType}},
		{MediaImage, CategoryEffects, []string{FieldEffectType}},
		{MediaVideo, CategoryVideoGenerate, []string{FieldDuration, FieldAspect, FieldCameraMovement, FieldMotionIntensity}},
		{MediaVideo, CategoryVideoEffects, []string{FieldDuration, FieldAspect, FieldCameraMovement, FieldMotionIntensity, FieldEffectType}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			fields := Fields(tt.media, tt.category)
			if len(fields) != len(tt.wantKeys) {
				t.Fatalf("Fields() returned %d fields, want %d", len(fields), len(tt.wantKeys))
			}
			for i, f := range fields {
				if f.Key != tt.wantKeys[i] {
					t.Errorf("field %d key = %q, want %q", i, f.Key, tt.wantKeys[i])
				}
				if len(f.Options) == 0 {
					t.Errorf("field %q has no options", f.Key)
				}
			}
		})
	}
}

func TestAspectRatio(t *testing.T) {
	tests := map[string]string{
		"16:9 (Horizontal)": "16:9",
		"4:3 (Clásico)":     "4:3",
		"21:9":              "21:9",
	}
	for in, want := range tests {
		if got := AspectRatio(in); got != want {
			t.Errorf("AspectRatio(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		selected, custom, want string
	}{
		{"10s", "ignored", "10s"},
		{DurationCustom, " 45s ", "45s"},
		{DurationCustom, "   ", "5s"},
	}
	for _, tt := range tests {
		if got := Duration(tt.selected, tt.custom); got != tt.want {
			t.Errorf("Duration(%q, %q) = %q, want %q", tt.selected, tt.custom, got, tt.want)
		}
	}
}
