package events

import "github.com/atomicstack/headless-menu/internal/logging"

type MenuTracer struct{}

type ListTracer struct{}

type MenuReason string

const (
	MenuReasonTrigger MenuReason = "trigger"
	MenuReasonEscape  MenuReason = "escape"
	MenuReasonOutside MenuReason = "outside"
	MenuReasonAPI     MenuReason = "api"
)

var (
	Menu = MenuTracer{}
	List = ListTracer{}
)

func (MenuTracer) Open(menuID string, reason MenuReason) {
	logging.Trace("menu.open", map[string]interface{}{"menu": menuID, "reason": string(reason)})
}

func (MenuTracer) Close(menuID string, reason MenuReason) {
	logging.Trace("menu.close", map[string]interface{}{"menu": menuID, "reason": string(reason)})
}

func (MenuTracer) StructuralError(menuID string, err error) {
	logging.Trace("menu.structure", map[string]interface{}{"menu": menuID, "error": err.Error()})
}

func (MenuTracer) Dispose(menuID string) {
	logging.Trace("menu.dispose", map[string]interface{}{"menu": menuID})
}

func (ListTracer) Cursor(listID string, index int) {
	logging.Trace("menu.cursor", map[string]interface{}{"list": listID, "cursor": index})
}

func (ListTracer) FocusContainer(listID string) {
	logging.Trace("menu.focus-container", map[string]interface{}{"list": listID})
}

func (ListTracer) FocusLock(listID string, from, to int) {
	logging.Trace("menu.focus-lock", map[string]interface{}{"list": listID, "from": from, "to": to})
}

func (ListTracer) Typeahead(listID, query string, index int) {
	logging.Trace("menu.typeahead", map[string]interface{}{"list": listID, "query": query, "match": index})
}

func (ListTracer) Select(listID, itemID, label string) {
	logging.Trace("menu.select", map[string]interface{}{"list": listID, "item": itemID, "label": label})
}
