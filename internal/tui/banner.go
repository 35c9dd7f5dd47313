package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"daydesk/internal/notify"
)

// BannerMsg carries a firing alarm banner into the program loop.
type BannerMsg struct {
	Banner notify.Banner
}

type bannerExpiredMsg struct {
	seq int
}

// ProgramBanner adapts a running bubbletea program into a banner sink.
// Timer goroutines call ShowBanner; tea.Program.Send is safe for that.
type ProgramBanner struct {
	p *tea.Program
}

func NewProgramBanner(p *tea.Program) *ProgramBanner {
	return &ProgramBanner{p: p}
}

func (b *ProgramBanner) ShowBanner(banner notify.Banner) {
	b.p.Send(BannerMsg{Banner: banner})
}
