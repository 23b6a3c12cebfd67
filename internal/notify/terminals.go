package notify

// terminalAppMap maps TERM_PROGRAM values to focusable app names.
var terminalAppMap = map[string]string{
	"Apple_Terminal": "Terminal",
	"iTerm.app":      "iTerm",
	"Alacritty":      "Alacritty",
	"alacritty":      "Alacritty",
	"kitty":          "kitty",
	"WezTerm":        "WezTerm",
	"Hyper":          "Hyper",
	"Ghostty":        "Ghostty",
	"vscode":         "Visual Studio Code",
	"cursor":         "Cursor",
	"Windsurf":       "Windsurf",
	"Zed":            "Zed",
	"rio":            "Rio",
	"foot":           "foot",
	"gnome-terminal": "Gnome-terminal",
	"konsole":        "Konsole",
	"xfce4-terminal": "Xfce4-terminal",
	"tilix":          "Tilix",
	"terminator":     "Terminator",

	"Windows Terminal": "WindowsTerminal",
	"ConEmu":           "ConEmu",
	"ConEmu64":         "ConEmu64",
	"Cmder":            "Cmder",
}

// macOSBundleMap maps __CFBundleIdentifier values to app names. Bundle
// IDs survive inside tmux where TERM_PROGRAM gets overwritten.
var macOSBundleMap = map[string]string{
	"com.apple.Terminal":             "Terminal",
	"com.googlecode.iterm2":          "iTerm",
	"io.alacritty":                   "Alacritty",
	"net.kovidgoyal.kitty":           "kitty",
	"com.github.wez.wezterm":         "WezTerm",
	"co.zeit.hyper":                  "Hyper",
	"com.mitchellh.ghostty":          "Ghostty",
	"com.microsoft.VSCode":           "Visual Studio Code",
	"com.todesktop.230313mzl4w4u92":  "Cursor",
	"com.codeium.windsurf":           "Windsurf",
	"dev.zed.Zed":                    "Zed",
	"dev.zed.Zed-Preview":            "Zed",
	"com.jetbrains.intellij":         "IntelliJ IDEA",
	"com.jetbrains.intellij.ce":      "IntelliJ IDEA CE",
	"com.jetbrains.pycharm":          "PyCharm",
	"com.jetbrains.pycharm.ce":       "PyCharm CE",
	"com.jetbrains.webstorm":         "WebStorm",
	"com.jetbrains.goland":           "GoLand",
	"com.jetbrains.phpstorm":         "PhpStorm",
	"com.jetbrains.rubymine":         "RubyMine",
	"com.jetbrains.clion":            "CLion",
	"com.jetbrains.datagrip":         "DataGrip",
	"com.jetbrains.rider":            "Rider",
	"com.jetbrains.AppCode":          "AppCode",
}
