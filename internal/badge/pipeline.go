package badge

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"slices"
	"time"

	"github.com/sunthewhat/koa-member-api/internal/pdfstamp"
)

const ContentType = "application/pdf"

// TemplateSource supplies the parsed template document.
type TemplateSource interface {
	Template(ctx context.Context) (*pdfstamp.Template, error)
}

// PortraitComposer turns raw photo bytes into the badge portrait.
type PortraitComposer interface {
	Compose(photo []byte) (*image.NRGBA, error)
}

// ScanEncoder renders a URL as a scannable code.
type ScanEncoder interface {
	Encode(content string) (image.Image, error)
}

// Signer post-processes a finished document.
type Signer interface {
	Sign(document []byte, identifier string) ([]byte, error)
}

// MemberBadgeInput is the part of a member record the badge needs. Photo
// holds raw image bytes; transport encodings must already be removed.
type MemberBadgeInput struct {
	Identifier string
	Name       string
	Photo      []byte
}

type RenderedBadge struct {
	Content  []byte
	Filename string
	// States lists every state the render went through, in order.
	States []State
}

func (b *RenderedBadge) ContentType() string {
	return ContentType
}

// PortraitDrawn reports whether the render placed a portrait. A portrait
// that was composed but failed to draw ends in StatePortraitSkipped.
func (b *RenderedBadge) PortraitDrawn() bool {
	drawn := false
	for _, s := range b.States {
		switch s {
		case StatePortraitReady:
			drawn = true
		case StatePortraitSkipped:
			drawn = false
		}
	}
	return drawn
}

type State int

const (
	StateStart State = iota
	StateTemplateLoaded
	StatePortraitReady
	StatePortraitSkipped
	StateOverlayBuilt
	StateMerged
	StateDone
	StateError
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateTemplateLoaded:
		return "template_loaded"
	case StatePortraitReady:
		return "portrait_ready"
	case StatePortraitSkipped:
		return "portrait_skipped"
	case StateOverlayBuilt:
		return "overlay_built"
	case StateMerged:
		return "merged"
	case StateDone:
		return "done"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

type Config struct {
	Layout Layout
	// PublicURLBase is the profile site root; the identifier and a trailing
	// slash are appended to it.
	PublicURLBase string
}

type Pipeline struct {
	cfg       Config
	templates TemplateSource
	composer  PortraitComposer
	encoder   ScanEncoder
	overlay   *OverlayRenderer
	signer    Signer
	metrics   *Metrics
}

type Option func(*Pipeline)

func WithComposer(c PortraitComposer) Option {
	return func(p *Pipeline) { p.composer = c }
}

func WithEncoder(e ScanEncoder) Option {
	return func(p *Pipeline) { p.encoder = e }
}

func WithSigner(s Signer) Option {
	return func(p *Pipeline) { p.signer = s }
}

func WithMetrics(m *Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

func NewPipeline(cfg Config, templates TemplateSource, opts ...Option) (*Pipeline, error) {
	if templates == nil {
		return nil, errors.New("template source is required")
	}
	if cfg.PublicURLBase == "" {
		return nil, errors.New("public URL base is required")
	}
	if err := cfg.Layout.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{
		cfg:       cfg,
		templates: templates,
		composer:  NewCompositor(cfg.Layout),
		encoder:   NewQREncoder(cfg.Layout),
		overlay:   NewOverlayRenderer(cfg.Layout),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// render carries one call through the state machine.
type render struct {
	in     MemberBadgeInput
	state  State
	states []State
	err    error

	template *pdfstamp.Template
	portrait image.Image
	page     *pdfstamp.Page
	document []byte
}

func (r *render) enter(s State) {
	r.state = s
	r.states = append(r.states, s)
}

func (r *render) fail(err error) {
	r.err = err
	r.enter(StateError)
}

// Render produces the badge document for one member. A failed render
// returns no bytes.
func (p *Pipeline) Render(ctx context.Context, in MemberBadgeInput) (*RenderedBadge, error) {
	started := time.Now()
	r := &render{in: in}
	r.enter(StateStart)

	for r.state != StateDone && r.state != StateError {
		if err := ctx.Err(); err != nil {
			r.fail(err)
			break
		}
		p.step(ctx, r)
	}

	p.metrics.ObserveRender(r.err, r.states, time.Since(started))

	if r.err != nil {
		slog.Error("Badge render failed", "error", r.err, "koalm", in.Identifier, "states", r.states)
		return nil, r.err
	}

	slog.Info("Badge rendered", "koalm", in.Identifier, "size", len(r.document), "states", r.states)
	return &RenderedBadge{
		Content:  r.document,
		Filename: p.cfg.Layout.Filename(in.Identifier),
		States:   r.states,
	}, nil
}

func (p *Pipeline) step(ctx context.Context, r *render) {
	switch r.state {
	case StateStart:
		if r.in.Identifier == "" {
			r.fail(fmt.Errorf("%w: identifier is required", ErrInvalidInput))
			return
		}
		tpl, err := p.templates.Template(ctx)
		if err != nil {
			if !errors.Is(err, ErrTemplateNotFound) {
				err = fmt.Errorf("%w: %v", ErrTemplateNotFound, err)
			}
			r.fail(err)
			return
		}
		r.template = tpl
		r.enter(StateTemplateLoaded)

	case StateTemplateLoaded:
		if len(r.in.Photo) == 0 {
			r.enter(StatePortraitSkipped)
			return
		}
		portrait, err := p.composer.Compose(r.in.Photo)
		if err != nil {
			slog.Warn("Badge photo unusable, rendering without portrait", "error", err, "koalm", r.in.Identifier)
			r.enter(StatePortraitSkipped)
			return
		}
		r.portrait = portrait
		r.enter(StatePortraitReady)

	case StatePortraitReady, StatePortraitSkipped:
		scan, err := p.encoder.Encode(PublicURL(p.cfg.PublicURLBase, r.in.Identifier))
		if err != nil {
			if !errors.Is(err, ErrCapacity) {
				err = fmt.Errorf("%w: %v", ErrCapacity, err)
			}
			r.fail(err)
			return
		}
		page, dropped, err := p.overlay.Render(r.template.Width(), r.template.Height(), OverlayContent{
			Portrait:   r.portrait,
			Scan:       scan,
			Name:       r.in.Name,
			Identifier: r.in.Identifier,
		})
		if err != nil {
			r.fail(fmt.Errorf("%w: %v", ErrMerge, err))
			return
		}
		if r.state == StatePortraitReady && slices.Contains(dropped, ElementPortrait) {
			r.portrait = nil
			r.enter(StatePortraitSkipped)
		}
		r.page = page
		r.enter(StateOverlayBuilt)

	case StateOverlayBuilt:
		document, err := r.template.Merge(r.page)
		if err != nil {
			r.fail(fmt.Errorf("%w: %v", ErrMerge, err))
			return
		}
		r.document = p.sign(document, r.in.Identifier)
		r.enter(StateMerged)

	case StateMerged:
		r.enter(StateDone)
	}
}

// sign never fails the render; an unsigned badge is still a valid badge.
func (p *Pipeline) sign(document []byte, identifier string) []byte {
	if p.signer == nil {
		return document
	}
	signed, err := p.signer.Sign(document, identifier)
	if err != nil || len(signed) == 0 {
		slog.Warn("Badge signing failed, returning unsigned document", "error", err, "koalm", identifier)
		return document
	}
	return signed
}
