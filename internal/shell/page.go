package shell

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/saqib40/kit-and-adapter/internal/model"
	"github.com/saqib40/kit-and-adapter/internal/session"
)

//go:embed templates/index.html
var templates embed.FS

var pageTemplate = template.Must(template.ParseFS(templates, "templates/index.html"))

type pageData struct {
	Screen       Screen
	Notification *Notification
}

// Page serves the HTML front-end and its form actions for one session.
type Page struct {
	session *session.Session
}

func NewPage(s *session.Session) *Page {
	return &Page{session: s}
}

func (p *Page) Render(w http.ResponseWriter, r *http.Request) {
	p.session.Sync(r.Context())

	data := pageData{
		Screen:       Compose(p.session.View()),
		Notification: Lookup(r.URL.Query().Get("notice")),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		log.Error().Err(err).Msg("Failed to render page")
	}
}

func (p *Page) Connect(w http.ResponseWriter, r *http.Request) {
	if _, err := p.session.Connect(r.Context()); err != nil {
		log.Error().Err(err).Msg("Failed to connect wallet")
	}
	redirect(w, r, nil)
}

func (p *Page) Disconnect(w http.ResponseWriter, r *http.Request) {
	if _, err := p.session.Disconnect(r.Context()); err != nil {
		log.Error().Err(err).Msg("Failed to disconnect wallet")
	}
	redirect(w, r, nil)
}

func (p *Page) SetRecipient(w http.ResponseWriter, r *http.Request) {
	p.session.SetRecipient(r.PostFormValue("recipient"))
	redirect(w, r, nil)
}

func (p *Page) Airdrop(w http.ResponseWriter, r *http.Request) {
	_, err := p.session.Airdrop(actionContext(r))
	redirect(w, r, Notify(model.ActionAirdrop, err))
}

// Send stores the submitted recipient as the draft and runs the transfer.
func (p *Page) Send(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err == nil && r.PostForm.Has("recipient") {
		p.session.SetRecipient(r.PostForm.Get("recipient"))
	}
	_, err := p.session.Transfer(actionContext(r))
	redirect(w, r, Notify(model.ActionTransfer, err))
}

// actionContext keeps request values but drops cancellation: once submitted,
// an action runs to completion even if the browser goes away.
func actionContext(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

func redirect(w http.ResponseWriter, r *http.Request, n *Notification) {
	target := "/"
	if n != nil {
		target += "?" + url.Values{"notice": {n.Code}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
