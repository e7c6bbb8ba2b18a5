package estimate

// Level classifies a notice for presentation.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notice is a short user-facing notification, shown once as a toast.
type Notice struct {
	Level   Level  `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

var (
	noticeEmptyDescription = Notice{LevelError, "Error", "Por favor, introduzca una descripción para generar la estimación."}
	noticeGenerated        = Notice{LevelSuccess, "Éxito", "Estimaciones generadas con IA y aplicadas."}
	noticeGenerateFailed   = Notice{LevelError, "Error de IA", "No se pudieron generar las estimaciones."}
	noticeOptimizeFailed   = Notice{LevelError, "Error de IA", "No se pudieron generar las sugerencias de optimización."}
	noticeSaved            = Notice{LevelSuccess, "Guardado", "Su estimación de costos ha sido guardada."}
	noticeSaveFailed       = Notice{LevelError, "Error", "No se pudo guardar la estimación."}
)
