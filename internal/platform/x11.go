package platform

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

const (
	// X11 selection and target names
	selectionClipboard = "CLIPBOARD"
	targetUTF8String   = "UTF8_STRING"
	targetIncr         = "INCR"
	transferProperty   = "CLIPPATHS_SELECTION"

	defaultSelectionWait = time.Second
	maxPropertyLength    = 1 << 20 // in 32-bit units
)

var (
	errNoSelectionOwner  = errors.New("clipboard selection has no owner")
	errConversionRefused = errors.New("selection owner refused UTF8_STRING conversion")
	errIncrTransfer      = errors.New("incremental selection transfer not supported")
	errSelectionTooLarge = errors.New("selection text exceeds the transfer limit")
	errConnectionClosed  = errors.New("X connection closed")
)

// X11Source reads the CLIPBOARD selection over the X protocol, without
// shelling out to a helper
type X11Source struct {
	display string
	wait    time.Duration
}

// NewX11Source connects to display, or $DISPLAY when empty. wait bounds how
// long the selection owner gets to answer; zero selects one second.
func NewX11Source(display string, wait time.Duration) *X11Source {
	if wait <= 0 {
		wait = defaultSelectionWait
	}
	return &X11Source{display: display, wait: wait}
}

func (s *X11Source) Name() string { return SourceX11 }

func (s *X11Source) ReadText(ctx context.Context) (string, error) {
	conn, err := xgb.NewConnDisplay(s.display)
	if err != nil {
		return "", fmt.Errorf("failed to connect to X server: %w", err)
	}
	defer conn.Close()

	win, err := createRequestorWindow(conn)
	if err != nil {
		return "", err
	}
	defer xproto.DestroyWindow(conn, win)

	atoms, err := internAtoms(conn, selectionClipboard, targetUTF8String, targetIncr, transferProperty)
	if err != nil {
		return "", err
	}
	clipboard, utf8, incr, prop := atoms[0], atoms[1], atoms[2], atoms[3]

	owner, err := xproto.GetSelectionOwner(conn, clipboard).Reply()
	if err != nil {
		return "", fmt.Errorf("failed to query selection owner: %w", err)
	}
	if owner.Owner == xproto.WindowNone {
		return "", errNoSelectionOwner
	}

	xproto.ConvertSelection(conn, win, clipboard, utf8, prop, xproto.TimeCurrentTime)

	type answer struct {
		text string
		err  error
	}
	done := make(chan answer, 1)
	go func() {
		text, err := awaitSelection(conn, win, prop, incr)
		done <- answer{text, err}
	}()

	timer := time.NewTimer(s.wait)
	defer timer.Stop()

	select {
	case a := <-done:
		return a.text, a.err
	case <-timer.C:
		return "", fmt.Errorf("selection owner did not answer within %s", s.wait)
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func createRequestorWindow(conn *xgb.Conn) (xproto.Window, error) {
	screen := xproto.Setup(conn).DefaultScreen(conn)
	win, err := xproto.NewWindowId(conn)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate window id: %w", err)
	}
	err = xproto.CreateWindowChecked(conn, screen.RootDepth, win, screen.Root,
		0, 0, 1, 1, 0, xproto.WindowClassInputOutput, screen.RootVisual, 0, nil).Check()
	if err != nil {
		return 0, fmt.Errorf("failed to create window: %w", err)
	}
	return win, nil
}

func internAtoms(conn *xgb.Conn, names ...string) ([]xproto.Atom, error) {
	cookies := make([]xproto.InternAtomCookie, len(names))
	for i, name := range names {
		cookies[i] = xproto.InternAtom(conn, false, uint16(len(name)), name)
	}

	atoms := make([]xproto.Atom, len(names))
	for i, cookie := range cookies {
		reply, err := cookie.Reply()
		if err != nil {
			return nil, fmt.Errorf("failed to intern atom %s: %w", names[i], err)
		}
		atoms[i] = reply.Atom
	}
	return atoms, nil
}

func awaitSelection(conn *xgb.Conn, win xproto.Window, prop, incr xproto.Atom) (string, error) {
	for {
		ev, xerr := conn.WaitForEvent()
		if ev == nil && xerr == nil {
			return "", errConnectionClosed
		}
		if xerr != nil {
			return "", fmt.Errorf("X error: %s", xerr.Error())
		}

		notify, ok := ev.(xproto.SelectionNotifyEvent)
		if !ok || notify.Requestor != win {
			continue
		}
		if notify.Property == xproto.AtomNone {
			return "", errConversionRefused
		}

		reply, err := xproto.GetProperty(conn, true, win, prop,
			xproto.GetPropertyTypeAny, 0, maxPropertyLength).Reply()
		if err != nil {
			return "", fmt.Errorf("failed to read selection property: %w", err)
		}
		return selectionText(reply, incr)
	}
}

func selectionText(reply *xproto.GetPropertyReply, incr xproto.Atom) (string, error) {
	if reply.Type == incr {
		return "", errIncrTransfer
	}
	if reply.BytesAfter > 0 {
		return "", errSelectionTooLarge
	}
	return string(reply.Value), nil
}
