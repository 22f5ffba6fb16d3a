package browser

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Notification is an event triggered on a field after its value was injected,
// so that the page and any select widget library pick up the change.
type Notification string

const (
	NotifyChange Notification = "change"
	// NotifyLisztUpdated refreshes widgets of the legacy Chosen releases.
	NotifyLisztUpdated Notification = "liszt:updated"
	// NotifyChosenUpdated refreshes widgets of current Chosen releases.
	NotifyChosenUpdated Notification = "chosen:updated"
)

var DefaultNotifications = []Notification{NotifyChange, NotifyLisztUpdated, NotifyChosenUpdated}

// Functions evaluated against a single element by the drivers.
const (
	attributeFunction = `function (el, name) { return el.getAttribute(name); }`
	textFunction      = `function (el) { return (el.textContent || '').replace(/\s+/g, ' ').trim(); }`
	valueFunction     = `function (el) {
	if (el.tagName === 'SELECT' && el.multiple) {
		return Array.from(el.selectedOptions).map(function (o) { return o.value; });
	}
	if (el.type === 'checkbox' || el.type === 'radio') {
		return el.checked ? el.value : null;
	}
	return el.value;
}`
	optionsFunction = `function (el) {
	return Array.from(el.querySelectorAll('option')).map(function (o) {
		return [(o.textContent || '').replace(/\s+/g, ' ').trim(), o.value];
	});
}`
	// FillFunction is used by drivers without a native fill.
	FillFunction = `function (el, value) {
	el.focus();
	el.value = value;
	el.dispatchEvent(new Event('input', { bubbles: true }));
	el.dispatchEvent(new Event('change', { bubbles: true }));
}`
)

// DiscardResult wraps code so that evaluating it yields undefined. Drivers
// returning results by value fail on results holding DOM nodes.
func DiscardResult(code string) string {
	return "(function () {\n" + code + ";\n})()"
}

// SetValueScript builds the jQuery script assigning value to the element with
// id fieldID and triggering notifications on it, in order.
func SetValueScript(fieldID string, value Value, notifications []Notification) (string, error) {
	id, err := json.Marshal(fieldID)
	if err != nil {
		return "", err
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("(function ($) {\n")
	fmt.Fprintf(&b, "\t$(document.getElementById(%s))\n", id)
	fmt.Fprintf(&b, "\t\t.val(%s)", encoded)
	for _, n := range notifications {
		event, err := json.Marshal(string(n))
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "\n\t\t.trigger(%s)", event)
	}
	b.WriteString(";\n})(jQuery)")
	return b.String(), nil
}

// ClickScript builds the jQuery script clicking the element with id fieldID.
func ClickScript(fieldID string) (string, error) {
	id, err := json.Marshal(fieldID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(function ($) {\n\t$(document.getElementById(%s)).click();\n})(jQuery)", id), nil
}

// FocusScript builds the jQuery script clicking every element whose text
// contains text.
func FocusScript(text string) (string, error) {
	quoted := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(text)
	selector, err := json.Marshal(fmt.Sprintf(":contains('%s')", quoted))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("jQuery(%s).click()", selector), nil
}
