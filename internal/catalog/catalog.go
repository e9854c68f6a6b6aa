// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalog holds the static content shown around the conversation:
// navigation entries, the history list, template cards, code samples and
// the fixed copy of the dashboard.
package catalog

// =============================================================================
// PAGES
// =============================================================================

// Page identifies a dashboard destination.
type Page int

const (
	PageChat Page = iota
	PageTemplates
	PageProjects
	PageStatistics
	PageSettings
	PageHelp
)

// NavItem is one entry of the navigation sidebar.
type NavItem struct {
	Page  Page
	Label string
	Short string // shown when the sidebar is collapsed
	Pro   bool
}

// NavItems lists the sidebar entries in display order.
var NavItems = []NavItem{
	{Page: PageChat, Label: "AI Chat Helper", Short: "C"},
	{Page: PageTemplates, Label: "Templates", Short: "T", Pro: true},
	{Page: PageProjects, Label: "My Projects", Short: "P", Pro: true},
	{Page: PageStatistics, Label: "Statistics", Short: "S", Pro: true},
	{Page: PageSettings, Label: "Settings", Short: "G"},
	{Page: PageHelp, Label: "Updates & FAQ", Short: "?"},
}

// String returns the nav label of the page.
func (p Page) String() string {
	if item, ok := Lookup(p); ok {
		return item.Label
	}
	return "Unknown"
}

// Lookup returns the nav entry for p.
func Lookup(p Page) (NavItem, bool) {
	for _, item := range NavItems {
		if item.Page == p {
			return item, true
		}
	}
	return NavItem{}, false
}

// IndexOf returns the position of p in NavItems, or 0 if absent.
func IndexOf(p Page) int {
	for i, item := range NavItems {
		if item.Page == p {
			return i
		}
	}
	return 0
}

// =============================================================================
// BRANDING AND FIXED COPY
// =============================================================================

const (
	AppName        = "MindMerge"
	AppInitial     = "M"
	HeaderTitle    = "AI Chat Helper"
	SearchHint     = "Search"
	LogoutLabel    = "Log out"
	InputHint      = "Start typing..."
	RegenerateHint = "Regenerate response"
	ThinkingLabel  = "AI is thinking..."

	PlanTitle = "Pro Plan"
	PlanBlurb = "Strengthen artificial intelligence, get plan!"
	PlanPrice = "$10 / mo"
	PlanCTA   = "Get"

	Disclaimer = "Free Research Preview. Model may produce inaccurate information about people, places, or facts."
	TermsLink  = "Check our terms"

	CodeInfoNote = "Note: This is just an example of a simple HTML form. In a real-world scenario, you would also want to " +
		"include proper validation and handling of the form data on the server side."

	ComingSoon = "This section is coming soon."
)

// =============================================================================
// HISTORY
// =============================================================================

// HistoryItem is one entry in the history panel.
type HistoryItem struct {
	Title       string
	Description string
	Active      bool
}

// HistoryLimit is the plan's history capacity shown in the counter.
const HistoryLimit = 50

// History lists the conversations shown in the history panel.
var History = []HistoryItem{
	{Title: "Create welcome form", Description: "Write code (HTML, CSS and JS) for a simple...", Active: true},
	{Title: "Instructions", Description: "How to set up a Wi-Fi wireless network?"},
	{Title: "Career", Description: "How to organise your working day effectively?"},
	{Title: "Career", Description: "Tips to improve productivity at work"},
	{Title: "Onboarding", Description: "How does artificial intelligence work?"},
	{Title: "Onboarding", Description: "What can you do?"},
}

// =============================================================================
// TEMPLATES
// =============================================================================

// Template is a card on the templates page.
type Template struct {
	ID          int
	Title       string
	Description string
	Category    string
	Pro         bool
}

// Action returns the card's button label.
func (t Template) Action() string {
	if t.Pro {
		return "Upgrade to Pro"
	}
	return "Use Template"
}

const (
	TemplatesTitle    = "Templates"
	TemplatesSubtitle = "Pre-built templates and code snippets to accelerate your development"
	UnlockTitle       = "Unlock All Templates"
	UnlockBlurb       = "Get access to our entire library of professional templates and code snippets"
	UnlockCTA         = "Upgrade to Pro"
)

// Templates lists the template cards.
var Templates = []Template{
	{ID: 1, Title: "React Component Template", Description: "Pre-built React component with TypeScript and Tailwind CSS", Category: "Frontend", Pro: true},
	{ID: 2, Title: "API Route Handler", Description: "Next.js API route with error handling and validation", Category: "Backend", Pro: true},
	{ID: 3, Title: "Landing Page", Description: "Modern landing page with hero section and features", Category: "Templates"},
	{ID: 4, Title: "Documentation Template", Description: "Clean documentation layout with navigation", Category: "Documentation", Pro: true},
}

// =============================================================================
// CODE SAMPLES
// =============================================================================

// CodeSample is one tab of the code display.
type CodeSample struct {
	Tab   string // HTML, CSS, JS
	Lexer string // chroma lexer name
	Code  string
}

// CodeSamples are the tabs of the code display, in tab order.
var CodeSamples = []CodeSample{
	{Tab: "HTML", Lexer: "javascript", Code: `let cancelButton = document.getElementById("cancel-button");
let sendButton = document.getElementById("send-button");

cancelButton.addEventListener("click", function() {
  console.log("Cancel button clicked");
});

sendButton.addEventListener("click", function() {
  console.log("Send button clicked");
});`},
	{Tab: "CSS", Lexer: "css", Code: `.button {
  padding: 12px 24px;
  border-radius: 8px;
  border: none;
  font-weight: 500;
  cursor: pointer;
  transition: all 0.2s ease;
}

.button-primary {
  background: #007bff;
  color: white;
}

.button-primary:hover {
  background: #0056b3;
}`},
	{Tab: "JS", Lexer: "javascript", Code: `function handleButtonClick(event) {
  const buttonType = event.target.dataset.type;

  if (buttonType === 'cancel') {
    console.log('Cancel action triggered');
    // Handle cancel logic
  } else if (buttonType === 'send') {
    console.log('Send action triggered');
    // Handle send logic
  }
}

// Add event listeners
document.addEventListener('DOMContentLoaded', function() {
  const buttons = document.querySelectorAll('.action-button');
  buttons.forEach(button => {
    button.addEventListener('click', handleButtonClick);
  });
});`},
}
