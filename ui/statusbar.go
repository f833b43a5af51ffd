package ui

// MessageType selects how a status message is styled.
type MessageType string

const (
	MessageInfo    MessageType = "info"
	MessageError   MessageType = "error"
	MessageSuccess MessageType = "success"
)

// HeaderInfo is the content of the top row.
type HeaderInfo struct {
	Title    string // file name or a localized "no file" label
	Modified bool
	Marker   string // shown after the title when Modified
	Right    string // language name
}

// StatusInfo is the content of the bottom row. Message is centered when it fits.
type StatusInfo struct {
	Left        string
	Message     string
	MessageType MessageType
	Right       string
}

// composeHeader lays out the header: title and modified marker on the left,
// language on the right.
func composeHeader(h HeaderInfo, width int) Row {
	if width <= 0 {
		return Row{}
	}
	b := &rowBuilder{}
	b.add(' ', RoleHeader, "")
	b.addString(h.Title, RoleHeader)
	if h.Modified && h.Marker != "" {
		b.add(' ', RoleHeader, "")
		b.addString(h.Marker, RoleHeaderAccent)
	}
	right := []rune(h.Right + " ")
	rightWidth := stringCells(right)
	if b.width+1+rightWidth <= width {
		b.pad(width-rightWidth, RoleHeader)
		for _, r := range right {
			b.add(r, RoleHeader, "")
		}
	}
	b.pad(width, RoleHeader)
	return fit(b.row, width, RoleHeader)
}

// composeStatus lays out the status line: position on the left, message in
// the middle, document summary on the right. The message is dropped when it
// does not fit with some breathing room.
func composeStatus(s StatusInfo, width int) Row {
	if width <= 0 {
		return Row{}
	}
	left := []rune(" " + s.Left)
	right := []rune(s.Right + " ")
	msg := []rune(s.Message)

	leftLen := stringCells(left)
	rightLen := stringCells(right)
	if leftLen+rightLen > width {
		right = nil
		rightLen = 0
	}
	available := max(width-leftLen-rightLen, 0)

	b := &rowBuilder{}
	for _, r := range left {
		b.add(r, RoleStatus, "")
	}

	centerLen := stringCells(msg)
	if len(msg) > 0 && centerLen+4 <= available {
		leftPad := (available - centerLen) / 2
		b.pad(leftLen+leftPad, RoleStatus)
		role := RoleStatusInfo
		switch s.MessageType {
		case MessageError:
			role = RoleStatusError
		case MessageSuccess:
			role = RoleStatusSuccess
		}
		for _, r := range msg {
			b.add(r, role, "")
		}
	}

	b.pad(width-rightLen, RoleStatus)
	for _, r := range right {
		b.add(r, RoleStatus, "")
	}
	return fit(b.row, width, RoleStatus)
}

func stringCells(runes []rune) int {
	w := 0
	for _, r := range runes {
		w += cellWidth(r)
	}
	return w
}
