package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexmorgan/folio/internal/content"
	"github.com/alexmorgan/folio/internal/theme"
)

// sentMessage is the fixed success notification text.
const sentMessage = "Message sent successfully! We'll get back to you soon."

// contactDraft is the in-progress, uncommitted form state.
type contactDraft struct {
	name    string
	email   string
	subject string
	message string
}

// setField mutates one named field. An unknown field name is a programmer
// error, not user input, so it panics.
func (d *contactDraft) setField(field, value string) {
	switch field {
	case "name":
		d.name = value
	case "email":
		d.email = value
	case "subject":
		d.subject = value
	case "message":
		d.message = value
	default:
		panic(fmt.Sprintf("contact: unknown field %q", field))
	}
}

// complete reports whether every field is present. Presence only: no email
// format check, and whitespace counts, matching a bare required attribute.
func (d contactDraft) complete() bool {
	return d.name != "" && d.email != "" && d.subject != "" && d.message != ""
}

func (d *contactDraft) reset() {
	*d = contactDraft{}
}

// contactModel owns the draft and the huh form that edits it. Submission is
// simulated: a success toast and a reset, nothing leaves the process.
type contactModel struct {
	themes *theme.Controller
	width  int
	height int

	draft      contactDraft
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	name    *string
	email   *string
	subject *string
	message *string
}

func newContactModel(tc *theme.Controller) contactModel {
	n, e, s, m := "", "", "", ""
	return contactModel{
		themes:  tc,
		name:    &n,
		email:   &e,
		subject: &s,
		message: &m,
	}
}

func (c *contactModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

func (c contactModel) update(msg tea.Msg) (contactModel, tea.Cmd) {
	if c.formActive && c.form != nil {
		return c.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter):
			return c.showForm()
		}
	}
	return c, nil
}

func required(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

func (c contactModel) showForm() (contactModel, tea.Cmd) {
	*c.name = c.draft.name
	*c.email = c.draft.email
	*c.subject = c.draft.subject
	*c.message = c.draft.message

	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Placeholder("Your name").Value(c.name).Validate(required("name")),
			huh.NewInput().Title("Email").Placeholder("Your email").Value(c.email).Validate(required("email")),
			huh.NewInput().Title("Subject").Placeholder("Project subject").Value(c.subject).Validate(required("subject")),
			huh.NewText().Title("Message").Placeholder("Your message").Value(c.message).Validate(required("message")),
		).Title("Send Message"),
	).WithShowHelp(true).WithShowErrors(true)

	c.formActive = true
	return c, c.form.Init()
}

func (c contactModel) updateForm(msg tea.Msg) (contactModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			c.harvest()
			c.formActive = false
			c.form = nil
			return c, nil
		}
	}

	form, cmd := c.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		c.form = f
	}

	if c.form.State == huh.StateCompleted {
		c.formActive = false
		c.form = nil
		c.harvest()
		return c.submit()
	}

	return c, cmd
}

// harvest copies the form's bound values into the draft, field by field.
func (c *contactModel) harvest() {
	c.draft.setField("name", *c.name)
	c.draft.setField("email", *c.email)
	c.draft.setField("subject", *c.subject)
	c.draft.setField("message", *c.message)
}

// submit checks the presence precondition itself, independent of the form's
// validation. A rejected submit has no effect at all: no reset, no toast.
func (c contactModel) submit() (contactModel, tea.Cmd) {
	if !c.draft.complete() {
		return c, nil
	}

	c.draft.reset()
	*c.name, *c.email, *c.subject, *c.message = "", "", "", ""

	return c, func() tea.Msg {
		return toastMsg{text: sentMessage, kind: toastSuccess}
	}
}

func (c contactModel) view() string {
	st := c.themes.Styles()
	w := c.width - 4

	if c.formActive && c.form != nil {
		title := st.Title.Render("Let's Collaborate")
		return st.Panel.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", c.form.View()),
		)
	}

	me := content.Me()

	header := lipgloss.JoinVertical(lipgloss.Left,
		st.Badge.Render("CONTACT"),
		st.Title.Render("Let's Collaborate"),
		st.Subtitle.Render("Ready to elevate your brand? Let's discuss how I can help you achieve your marketing goals"),
	)

	info := []string{
		st.Muted.Render("Email:    ") + st.NormalItem.Render(me.Email),
		st.Muted.Render("Phone:    ") + st.NormalItem.Render(me.Phone),
		st.Muted.Render("Location: ") + st.NormalItem.Render(me.Location),
	}

	var social []string
	for _, s := range content.SocialLinks() {
		social = append(social, st.Highlight.Render(s.Name)+" "+st.Muted.Render(s.URL))
	}

	rows := []string{header, ""}
	rows = append(rows, info...)
	rows = append(rows, "")
	rows = append(rows, social...)
	rows = append(rows, "", st.Muted.Render("enter: write a message"))

	return st.Panel.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
