package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	cmnerror "github.com/msto63/commons/foundation/core/error"
)

// Table styles
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorError     = lipgloss.Color("#EF4444") // Red

	codesHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	codesKindStyle = lipgloss.NewStyle().
			Width(22)

	codesStatusStyle = lipgloss.NewStyle().
				Width(8).
				Align(lipgloss.Right)

	codesServerStyle = codesStatusStyle.
				Foreground(ColorError)

	codesMutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List exception kinds and their HTTP status codes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), renderCodes())
	},
}

func init() {
	rootCmd.AddCommand(codesCmd)
}

func renderCodes() string {
	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			codesHeaderStyle.Inherit(codesKindStyle).Render("KIND"),
			codesHeaderStyle.Inherit(codesStatusStyle).Render("HTTP"),
		),
	}

	for _, kind := range cmnerror.AllKinds() {
		status := codesMutedStyle.Inherit(codesStatusStyle).Render("-")
		if kind.IsHTTP() {
			style := codesStatusStyle
			if kind.HTTPCode() >= 500 {
				style = codesServerStyle
			}
			status = style.Render(strconv.Itoa(kind.HTTPCode()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			codesKindStyle.Render(kind.String()),
			status,
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
