package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/ShayCichocki/tmuxhop/internal/exec"
)

// windowsNotifier posts a toast via PowerShell. Click-to-focus would need
// a registered URI protocol handler, so the click context is ignored.
type windowsNotifier struct {
	runner exec.CommandRunner
}

func (n *windowsNotifier) Send(ctx context.Context, title, message string, _ *PaneContext) bool {
	toast := fmt.Sprintf(`
<toast>
    <visual>
        <binding template="ToastText02">
            <text id="1">%s</text>
            <text id="2">%s</text>
        </binding>
    </visual>
</toast>
`, escapePowerShell(title), escapePowerShell(message))

	script := fmt.Sprintf(`
[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
[Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom.XmlDocument, ContentType = WindowsRuntime] | Out-Null
$template = @'
%s
'@
$xml = New-Object Windows.Data.Xml.Dom.XmlDocument
$xml.LoadXml($template)
$toast = [Windows.UI.Notifications.ToastNotification]::new($xml)
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier('Claude Code').Show($toast)
`, toast)

	return n.runner.Run(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", script) == nil
}

// windowsFocusHandler activates a window with WScript.Shell.AppActivate.
// Some terminals manage their own windows and ignore COM activation.
type windowsFocusHandler struct {
	runner exec.CommandRunner
}

func (h *windowsFocusHandler) Focus(ctx context.Context, appName, _ string, pane *PaneContext) bool {
	script := fmt.Sprintf(
		`(New-Object -ComObject WScript.Shell).AppActivate('%s')`, escapePowerShell(appName))
	if h.runner.Run(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", script) != nil {
		return false
	}
	switchTmuxPane(ctx, h.runner, pane)
	return true
}

// windowsFocusDetector compares the foreground window title to the app
// name via the Win32 API surfaced in PowerShell.
type windowsFocusDetector struct {
	runner exec.CommandRunner
}

func (d *windowsFocusDetector) IsFocused(ctx context.Context, appName, sessionName string) bool {
	out, err := d.runner.Output(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command",
		`Add-Type -AssemblyName UIAutomationClient; [System.Windows.Automation.AutomationElement]::FocusedElement.Current.Name`)
	if err != nil || out == "" {
		return false
	}
	search := appName
	if sessionName != "" {
		search = sessionName
	}
	return strings.Contains(strings.ToLower(out), strings.ToLower(search))
}

func escapePowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
