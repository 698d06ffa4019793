package linedit

import (
	"fmt"
	"runtime/debug"

	"github.com/hnimtadd/linedit/editor"
	"github.com/hnimtadd/linedit/editor/document"
	"github.com/hnimtadd/linedit/editor/intent"
	"github.com/hnimtadd/linedit/editor/size"
	"github.com/hnimtadd/linedit/editor/viewport"
	"github.com/hnimtadd/linedit/logger"
)

// Session is one editing session: a document, its cursor and viewport, and
// the policy for what to do when the file layer fails.
type Session struct {
	// The editing core. Renderer-agnostic; it only knows the viewport size.
	editor *editor.Editor

	// Routes decoded intents into editor calls.
	handler *IntentHandler

	// Hash of the last frame handed out, so callers can skip a redraw.
	// Only meaningful once haveFrame is set.
	lastFrame uint64
	haveFrame bool

	logger logger.Logger
}

type Options struct {
	Width, Height int
	Logger        logger.Logger
}

// NewSession starts a session on an empty, unnamed document.
func NewSession(opts Options) *Session {
	log := logger.OrNop(opts.Logger)
	ed := editor.New(document.New(), editor.Options{
		Size:   size.New(opts.Width, opts.Height),
		Logger: log,
	})
	return &Session{
		editor: ed,
		handler: &IntentHandler{
			editor: ed,
			logger: log,
		},
		logger: log,
	}
}

// Open loads path. When the file cannot be read the session falls back to
// an empty document that will be saved to path, and the read error is
// returned so the caller can tell the user.
func (s *Session) Open(path string) error {
	doc, err := document.Open(path)
	if err != nil {
		s.logger.Warn("open failed, starting empty document", "path", path, "error", err)
		doc = document.New()
		doc.SetFilename(path)
		s.editor.SetDocument(doc)
		return err
	}
	s.logger.Info("document opened", "path", path, "rows", doc.Len())
	s.editor.SetDocument(doc)
	return nil
}

// Save writes the document to its filename. Unlike Document.Save, a
// missing filename is reported as ErrNoFilename so the caller can prompt.
func (s *Session) Save() error {
	doc := s.editor.Document()
	if doc.Filename() == "" {
		return document.ErrNoFilename
	}
	if err := doc.Save(); err != nil {
		s.logger.Error("save failed", "path", doc.Filename(), "error", err)
		return err
	}
	s.logger.Info("document saved", "path", doc.Filename(), "rows", doc.Len())
	return nil
}

// SaveAs associates path with the document and saves it there.
func (s *Session) SaveAs(path string) error {
	s.editor.Document().SetFilename(path)
	return s.Save()
}

// Handle applies one decoded intent.
func (s *Session) Handle(i intent.Intent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic while handling intent", "intent", i, "panic", r,
				"stack", string(debug.Stack()))
			err = fmt.Errorf("panic while handling intent %v: %v", i, r)
		}
	}()
	s.handler.Handle(i)
	return nil
}

// HandleName applies the intent registered under name.
func (s *Session) HandleName(name string) error {
	i, ok := intent.FromName(name)
	if !ok {
		return fmt.Errorf("unknown intent %q", name)
	}
	return s.Handle(i)
}

// Resize updates the viewport size reported by the terminal layer.
func (s *Session) Resize(width, height int) {
	s.editor.Resize(width, height)
}

// Frame renders the visible window. changed is false only when the frame
// is known to be identical to the previous one returned.
func (s *Session) Frame() (frame viewport.Frame, changed bool) {
	frame = s.editor.Frame()
	hash, err := frame.Hash()
	if err != nil {
		s.logger.Error("frame hash failed, forcing redraw", "error", err)
		s.haveFrame = false
		return frame, true
	}
	changed = !s.haveFrame || hash != s.lastFrame
	s.lastFrame = hash
	s.haveFrame = true
	return frame, changed
}

func (s *Session) Editor() *editor.Editor {
	return s.editor
}

func (s *Session) Document() *document.Document {
	return s.editor.Document()
}
