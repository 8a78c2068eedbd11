package tui

import "github.com/rgehrsitz/coastfi/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles with components
var (
	TitleStyle        = tuistyles.TitleStyle
	SubtitleStyle     = tuistyles.SubtitleStyle
	BorderStyle       = tuistyles.BorderStyle
	ActiveBorderStyle = tuistyles.ActiveBorderStyle
	SelectedItemStyle = tuistyles.SelectedItemStyle
	ErrorStyle        = tuistyles.ErrorStyle
	InfoStyle         = tuistyles.InfoStyle
	TableHeaderStyle  = tuistyles.TableHeaderStyle
	TableCellStyle    = tuistyles.TableCellStyle

	FormatCurrency = tuistyles.FormatCurrency
)
