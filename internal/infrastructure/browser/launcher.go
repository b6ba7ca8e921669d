package browser

import "github.com/chromedp/chromedp"

// Modos de adquisición del navegador. La elección se hace una sola vez en el
// arranque por configuración, nunca sondeando el entorno dentro del render.
const (
	ModeLocal      = "local"
	ModeServerless = "serverless"
)

// Launcher es la estrategia de adquisición del Chromium headless. Las dos
// implementaciones son funcionalmente equivalentes: con el mismo HTML y la
// misma versión de navegador el PDF resultante es byte a byte idéntico.
type Launcher interface {
	AllocatorOptions() []chromedp.ExecAllocatorOption
}

// LocalLauncher usa la instalación completa local de Chrome/Chromium.
// ExecPath vacío deja que chromedp busque el binario en las rutas estándar.
type LocalLauncher struct {
	ExecPath string
}

// AllocatorOptions implementa Launcher.
func (l LocalLauncher) AllocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts, chromedp.NoSandbox)
	if l.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(l.ExecPath))
	}
	return opts
}

// ServerlessLauncher usa un binario recortado de Chromium en entornos
// restringidos (sin /dev/shm utilizable, un solo proceso permitido).
type ServerlessLauncher struct {
	ExecPath string
}

// AllocatorOptions implementa Launcher.
func (l ServerlessLauncher) AllocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.ExecPath(l.ExecPath),
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("single-process", true),
		chromedp.Flag("no-zygote", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	return opts
}

// NewLauncher selecciona la estrategia según configuración.
// Cualquier modo distinto de "serverless" cae al launcher local.
func NewLauncher(mode, execPath string) Launcher {
	if mode == ModeServerless {
		return ServerlessLauncher{ExecPath: execPath}
	}
	return LocalLauncher{ExecPath: execPath}
}
