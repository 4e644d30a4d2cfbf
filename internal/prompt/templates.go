package prompt

import "fmt"

// Image templates

func faceTransformTemplate(description, style string, extras Extras) string {
	d := DefaultExtras(MediaImage, CategoryFaceTransform)
	transformation := extras.get(d[FieldTransformation], FieldTransformation)
	keepIdentity := extras.get(d[FieldKeepIdentity], FieldKeepIdentity)

	return fmt.Sprintf(`Eres un experto en crear prompts para TRANSFORMACIÓN DE ROSTROS con IA (face swap, edición facial, disfraces).

TAREA: Transformar un rostro según la descripción del usuario.

DESCRIPCIÓN: "%s"
TIPO DE TRANSFORMACIÓN: %s
ESTILO: %s
MANTENER IDENTIDAD FACIAL: %s

INSTRUCCIONES CRÍTICAS:

1. PROMPT POSITIVO:
   - Describe la transformación de forma TÉCNICA y ESPECÍFICA
   - Si debe mantener identidad: enfatiza "preservar rasgos faciales originales", "mantener estructura facial", "conservar identidad"
   - Si es disfraz/vestuario: describe el atuendo, accesorios, maquillaje con detalle técnico
   - Si es cambio de edad: especifica edad objetivo, características de piel, arrugas/suavidad
   - Si es cambio de estilo: describe peinado, maquillaje, expresión facial
   - Menciona: iluminación facial, ángulo de cámara, calidad de textura de piel
   - Incluye detalles como: "fotografía de retrato", "enfoque en rostro", "alta definición facial"
   - Tono TÉCNICO y DIRECTO, no poético

   EJEMPLO: "Retrato fotográfico de persona con disfraz de superhéroe, máscara roja y azul cubriendo parte superior del rostro, preservando rasgos faciales originales, traje detallado con textura de tela, iluminación frontal suave, enfoque nítido en rostro, alta resolución, estilo fotorrealista"

2. PROMPT NEGATIVO:
   - CRÍTICO para rostros: "rostro distorsionado, anatomía facial incorrecta, ojos asimétricos, proporciones faciales incorrectas, rostro borroso, rasgos deformados"
   - Agregar: "baja calidad, desenfoque, artefactos digitales, múltiples rostros, rostro duplicado"

IMPORTANTE:
- Todo en ESPAÑOL
- Enfoque en CALIDAD FACIAL y PRESERVACIÓN DE IDENTIDAD (si aplica)
- Tono técnico y profesional

FORMATO DE RESPUESTA:
POSITIVE:
[descripción técnica de la transformación facial]

NEGATIVE:
[elementos a evitar, especialmente defectos faciales]`, description, transformation, style, keepIdentity)
}

func modifyTemplate(description, style string, extras Extras) string {
	modification := extras.get("", FieldModificationType)

	return fmt.Sprintf(`Eres un experto en crear prompts para MODIFICACIÓN DE IMÁGENES con IA (cambio de fondos, agregar elementos, edición).

TAREA: Modificar una imagen existente según la descripción del usuario.

DESCRIPCIÓN: "%s"
TIPO DE MODIFICACIÓN: %s
ESTILO: %s

INSTRUCCIONES IMPORTANTES:

1. PROMPT POSITIVO:
   - Describe la modificación de forma TÉCNICA y CLARA
   - Si es cambio de fondo: describe el nuevo fondo con detalle (ubicación, iluminación, elementos)
   - Si es agregar elementos: especifica qué agregar, dónde, cómo debe integrarse
   - Si es eliminar elementos: menciona "sin [elemento]", "fondo limpio", "área vacía"
   - Enfatiza: "integración natural", "iluminación coherente", "perspectiva correcta"
   - Menciona composición, balance de colores, coherencia visual
   - Tono TÉCNICO y DIRECTO

   EJEMPLO: "Fotografía de persona en playa tropical, fondo con palmeras y océano turquesa, arena blanca, integración natural de iluminación, sombras coherentes con luz solar, perspectiva correcta, alta resolución, estilo fotorrealista"

2. PROMPT NEGATIVO:
   - "elementos mal integrados, iluminación inconsistente, sombras incorrectas, perspectiva distorsionada, bordes artificiales, recorte visible"
   - Agregar: "baja calidad, artefactos, fusión defectuosa"

IMPORTANTE:
- Todo en ESPAÑOL
- Enfoque en INTEGRACIÓN NATURAL y COHERENCIA
- Tono técnico y profesional

FORMATO DE RESPUESTA:
POSITIVE:
[descripción técnica de la modificación]

NEGATIVE:
[elementos a evitar en la modificación]`, description, modification, style)
}

func effectsTemplate(description, style string, extras Extras) string {
	effect := extras.get("", FieldEffectType)

	return fmt.Sprintf(`Eres un experto en crear prompts para EFECTOS ESPECIALES en imágenes con IA (iluminación, clima, atmósfera, filtros).

TAREA: Aplicar efectos especiales a una imagen según la descripción del usuario.

DESCRIPCIÓN: "%s"
TIPO DE EFECTO: %s
ESTILO: %s

INSTRUCCIONES IMPORTANTES:

1. PROMPT POSITIVO:
   - Describe el efecto de forma TÉCNICA y ESPECÍFICA
   - Si es iluminación: especifica tipo (dorada, azul, dramática), dirección, intensidad
   - Si es clima: describe condiciones (lluvia, niebla, nieve) con detalle técnico
   - Si es atmósfera: menciona mood, tonalidad de color, partículas (polvo, humo)
   - Si es hora del día: describe luz característica (amanecer, atardecer, noche)
   - Enfatiza: "iluminación volumétrica", "rayos de luz", "partículas en el aire", "color grading"
   - Tono TÉCNICO y DIRECTO

   EJEMPLO: "Escena con iluminación de atardecer dorado, rayos de luz volumétricos atravesando nubes, partículas de polvo visibles en el aire, color grading cálido con tonos naranjas y amarillos, sombras alargadas, atmósfera cinematográfica, alta calidad, estilo fotorrealista"

2. PROMPT NEGATIVO:
   - "iluminación plana, sin atmósfera, colores apagados, efectos artificiales, sobreexposición, subexposición"
   - Agregar: "baja calidad, efectos mal aplicados, artefactos"

IMPORTANTE:
- Todo en ESPAÑOL
- Enfoque en CALIDAD DE EFECTOS y ATMÓSFERA
- Tono técnico y profesional

FORMATO DE RESPUESTA:
POSITIVE:
[descripción técnica del efecto especial]

NEGATIVE:
[elementos a evitar en los efectos]`, description, effect, style)
}

func generateTemplate(description, style string, _ Extras) string {
	return fmt.Sprintf(`Eres un experto en crear prompts para generación de imágenes con IA (como Midjourney, DALL-E, Stable Diffusion).

Tu tarea es convertir una descripción simple del usuario en un prompt técnico, detallado y directo en español.

DESCRIPCIÓN DEL USUARIO: "%s"
ESTILO SOLICITADO: %s

INSTRUCCIONES IMPORTANTES:

1. PROMPT POSITIVO:
   - Escribe una descripción TÉCNICA y DIRECTA de la imagen (NO poética ni exaltada)
   - Usa un tono profesional y objetivo
   - Describe los elementos visuales de forma clara y específica
   - Integra los detalles técnicos de forma natural en la descripción
   - Menciona: composición, iluminación, colores, perspectiva, detalles importantes
   - Incluye el estilo artístico de forma integrada
   - NO uses lenguaje florido, metáforas excesivas o adjetivos dramáticos
   - Debe ser descriptivo pero directo, como una ficha técnica narrativa

   EJEMPLO BUENO: "Fotografía de un gato atigrado descansando en una playa durante el atardecer, olas del océano en segundo plano reflejando tonos naranjas del cielo, arena detallada, iluminación natural lateral que define el pelaje del animal, composición horizontal con profundidad de campo, alta resolución, estilo fotorrealista"

   EJEMPLO MALO (muy poético): "Un majestuoso felino atigrado reposando serenamente sobre las doradas arenas de una playa paradisíaca, mientras las olas danzan suavemente bajo el resplandor mágico de un atardecer celestial..."

2. PROMPT NEGATIVO:
   - Lista concisa de elementos a evitar
   - Términos técnicos directos
   - Incluye: baja calidad, desenfoque, distorsión, anatomía incorrecta, elementos no deseados

IMPORTANTE:
- Todo en ESPAÑOL
- Tono TÉCNICO y DIRECTO, no poético
- Descriptivo pero profesional y objetivo
- Integra los aspectos técnicos de forma fluida

FORMATO DE RESPUESTA (SIGUE ESTE FORMATO EXACTO):
POSITIVE:
[descripción técnica, detallada y directa en español]

NEGATIVE:
[lista de elementos a evitar en español]`, description, style)
}

// Video templates

func videoGenerateTemplate(description, style string, extras Extras) string {
	f := resolveVideoFields(CategoryVideoGenerate, extras)

	return fmt.Sprintf(`Eres un experto en crear prompts para GENERACIÓN DE VIDEOS con IA (como Runway, Pika, Sora).

Tu tarea es convertir una descripción del usuario en un prompt técnico para generación de video.

DESCRIPCIÓN: "%[1]s"
ESTILO: %[2]s
DURACIÓN: %[3]s
RELACIÓN DE ASPECTO: %[4]s
MOVIMIENTO DE CÁMARA: %[5]s
INTENSIDAD DE MOVIMIENTO: %[6]s

INSTRUCCIONES IMPORTANTES:

1. PROMPT POSITIVO:
   - Describe la ESCENA y la ACCIÓN de forma TÉCNICA y CINEMATOGRÁFICA
   - Especifica el movimiento de cámara: %[5]s
   - Menciona la duración aproximada: %[3]s
   - Describe el movimiento de elementos en la escena (intensidad: %[6]s)
   - Incluye: composición, iluminación, transiciones suaves
   - Enfatiza: "movimiento fluido", "transición natural", "continuidad temporal"
   - Menciona el aspecto ratio: %[4]s
   - Tono TÉCNICO y CINEMATOGRÁFICO

   EJEMPLO: "Video de un gato caminando por una playa al atardecer, cámara con paneo lateral suave siguiendo al animal, olas en movimiento constante en segundo plano, arena con textura detallada, iluminación dorada del atardecer, movimiento fluido y natural, duración 5 segundos, aspecto 16:9, estilo cinematográfico realista"

2. PROMPT NEGATIVO:
   - "movimiento brusco, saltos de frames, parpadeo, glitches, movimiento antinatural, cámara inestable, cortes abruptos"
   - Agregar: "baja calidad, artefactos de compresión, distorsión temporal, objetos que aparecen/desaparecen"

IMPORTANTE:
- Todo en ESPAÑOL
- Enfoque en MOVIMIENTO FLUIDO y CONTINUIDAD
- Especifica claramente el tipo de movimiento de cámara
- Tono técnico y cinematográfico

FORMATO DE RESPUESTA:
POSITIVE:
[descripción técnica del video con movimientos y duración]

NEGATIVE:
[elementos a evitar en el video]`, description, style, f.duration, f.aspect, f.movement, f.intensity)
}

func imageToVideoTemplate(description, style string, extras Extras) string {
	f := resolveVideoFields(CategoryImageToVideo, extras)

	return fmt.Sprintf(`Eres un experto en crear prompts para ANIMAR IMÁGENES ESTÁTICAS (imagen a video) con IA.

Tu tarea es describir cómo animar una imagen estática en un video dinámico.

DESCRIPCIÓN: "%[1]s"
ESTILO: %[2]s
DURACIÓN: %[3]s
RELACIÓN DE ASPECTO: %[4]s
MOVIMIENTO DE CÁMARA: %[5]s
INTENSIDAD DE MOVIMIENTO: %[6]s

INSTRUCCIONES IMPORTANTES:

1. PROMPT POSITIVO:
   - Describe cómo ANIMAR la imagen estática
   - Especifica el movimiento de cámara: %[5]s
   - Menciona qué elementos deben moverse y cómo (intensidad: %[6]s)
   - Describe movimientos sutiles: cabello, ropa, elementos ambientales
   - Enfatiza: "animación sutil", "movimiento natural", "transición suave desde imagen estática"
   - Menciona duración: %[3]s
   - Tono TÉCNICO enfocado en ANIMACIÓN

   EJEMPLO: "Animar imagen de retrato, zoom in suave hacia el rostro, movimiento sutil del cabello como si hubiera brisa ligera, parpadeo natural de ojos, ligero movimiento de ropa, fondo con desenfoque bokeh que se mueve sutilmente, transición fluida, duración 3 segundos, intensidad baja, aspecto 9:16"

2. PROMPT NEGATIVO:
   - "movimiento excesivo, distorsión de rostro, animación artificial, elementos que se deforman, movimiento no natural"
   - Agregar: "glitches, parpadeo, saltos bruscos, pérdida de calidad de imagen original"

IMPORTANTE:
- Todo en ESPAÑOL
- Enfoque en ANIMACIÓN SUTIL y NATURAL
- Preservar la calidad de la imagen original
- Movimientos coherentes con la escena

FORMATO DE RESPUESTA:
POSITIVE:
[descripción técnica de cómo animar la imagen]

NEGATIVE:
[elementos a evitar en la animación]`, description, style, f.duration, f.aspect, f.movement, f.intensity)
}

func videoEffectsTemplate(description, style string, extras Extras) string {
	d := DefaultExtras(MediaVideo, CategoryVideoEffects)
	duration := extras.get(d[FieldDuration], FieldDuration)
	effect := extras.get(d[FieldEffectType], FieldEffectType)

	return fmt.Sprintf(`Eres un experto en crear prompts para EFECTOS Y TRANSICIONES EN VIDEO con IA.

Tu tarea es describir efectos visuales para aplicar a un video.

DESCRIPCIÓN: "%s"
TIPO DE EFECTO: %s
ESTILO: %s
DURACIÓN: %s

INSTRUCCIONES IMPORTANTES:

1. PROMPT POSITIVO:
   - Describe el EFECTO VISUAL de forma TÉCNICA
   - Si es iluminación: especifica cambios de luz, color grading, rayos volumétricos
   - Si es clima: describe lluvia, nieve, niebla con movimiento natural
   - Si es transición: describe el tipo (fade, dissolve, wipe) y duración
   - Enfatiza: "transición suave", "efecto progresivo", "integración natural"
   - Menciona cómo evoluciona el efecto durante la duración
   - Tono TÉCNICO y CINEMATOGRÁFICO

   EJEMPLO: "Video con transición de día a noche, cambio gradual de iluminación de tonos cálidos a azules fríos, aparición progresiva de estrellas en el cielo, sombras que se alargan y oscurecen, color grading que evoluciona suavemente, duración 5 segundos, transición cinematográfica fluida"

2. PROMPT NEGATIVO:
   - "transición brusca, cambios abruptos, efectos artificiales, inconsistencia temporal, parpadeo"
   - Agregar: "artefactos visuales, glitches, efectos mal aplicados"

IMPORTANTE:
- Todo en ESPAÑOL
- Enfoque en TRANSICIONES SUAVES y EFECTOS NATURALES
- Describir la evolución temporal del efecto

FORMATO DE RESPUESTA:
POSITIVE:
[descripción técnica del efecto o transición]

NEGATIVE:
[elementos a evitar]`, description, effect, style, duration)
}

func cameraMovementTemplate(description, style string, extras Extras) string {
	f := resolveVideoFields(CategoryCameraMovement, extras)

	return fmt.Sprintf(`Eres un experto en crear prompts para MOVIMIENTOS DE CÁMARA CINEMATOGRÁFICOS en video con IA.

Tu tarea es describir movimientos de cámara profesionales para un video.

DESCRIPCIÓN: "%[1]s"
MOVIMIENTO DE CÁMARA: %[5]s
ESTILO: %[2]s
DURACIÓN: %[3]s
RELACIÓN DE ASPECTO: %[4]s
INTENSIDAD: %[6]s

INSTRUCCIONES IMPORTANTES:

1. PROMPT POSITIVO:
   - Describe el MOVIMIENTO DE CÁMARA de forma TÉCNICA y PRECISA
   - Especifica el tipo: %[5]s
   - Describe la trayectoria y velocidad (intensidad: %[6]s)
   - Menciona: punto de inicio, punto final, velocidad de movimiento
   - Si es paneo: dirección (izquierda/derecha, arriba/abajo)
   - Si es zoom: in/out, velocidad
   - Si es dolly: avance/retroceso, altura de cámara
   - Si es tracking: seguimiento del sujeto, estabilidad
   - Enfatiza: "movimiento suave", "estabilizado", "cinematográfico"
   - Tono TÉCNICO de CINEMATOGRAFÍA

   EJEMPLO: "Video con dolly in cinematográfico, cámara avanza suavemente hacia el sujeto desde 3 metros hasta primer plano, movimiento estabilizado y fluido, velocidad media constante, altura de cámara a nivel de ojos, enfoque rack progresivo, duración 5 segundos, aspecto 16:9, estilo cinematográfico profesional"

2. PROMPT NEGATIVO:
   - "cámara inestable, movimiento brusco, sacudidas, desenfoque de movimiento, trayectoria errática"
   - Agregar: "movimiento robótico, aceleración/desaceleración abrupta, pérdida de estabilización"

IMPORTANTE:
- Todo en ESPAÑOL
- Enfoque en MOVIMIENTOS PROFESIONALES y SUAVES
- Especificar claramente la trayectoria de cámara
- Tono de cinematografía profesional

FORMATO DE RESPUESTA:
POSITIVE:
[descripción técnica del movimiento de cámara]

NEGATIVE:
[elementos a evitar en el movimiento]`, description, style, f.duration, f.aspect, f.movement, f.intensity)
}
