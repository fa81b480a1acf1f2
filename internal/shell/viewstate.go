package shell

// ViewState is the navigation state owned by the shell.
type ViewState struct {
	ActiveTab           TabID `json:"active_tab"`
	ServicesExpanded    bool  `json:"services_expanded"`
	QuickActionExpanded bool  `json:"quick_action_expanded"`
}

func NewViewState() ViewState {
	return ViewState{ActiveTab: DefaultTab}
}

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

// Navigate is a user selecting a section. The caller is responsible for pushing the fragment.
type Navigate struct {
	Tab TabID
}

// FragmentChanged is the location changing underneath the view, e.g. via back/forward or an
// edited location.
type FragmentChanged struct {
	Fragment string
}

type ToggleServices struct{}

type ToggleQuickActions struct{}

// QuickAction opens a section on behalf of a dashboard shortcut. The pending action is handed
// off separately through Session.
type QuickAction struct {
	Tab    TabID
	Action string
}

func (Navigate) isEvent()           {}
func (FragmentChanged) isEvent()    {}
func (ToggleServices) isEvent()     {}
func (ToggleQuickActions) isEvent() {}
func (QuickAction) isEvent()        {}

// Reduce applies a single event and returns the new state. The services group is only ever
// opened by navigation, never closed.
func Reduce(state ViewState, event Event) ViewState {
	switch evt := event.(type) {
	case Navigate:
		return activate(state, evt.Tab)
	case FragmentChanged:
		fragment := ParseFragment(evt.Fragment)
		if fragment == "" {
			return state
		}

		return activate(state, TabID(fragment))
	case ToggleServices:
		state.ServicesExpanded = !state.ServicesExpanded
	case ToggleQuickActions:
		state.QuickActionExpanded = !state.QuickActionExpanded
	case QuickAction:
		state = activate(state, evt.Tab)
		state.QuickActionExpanded = false
	}

	return state
}

func activate(state ViewState, tab TabID) ViewState {
	state.ActiveTab = tab
	if tab.IsService() {
		state.ServicesExpanded = true
	}

	return state
}

// NavigateToTab selects a tab and records it as the current location fragment without
// notifying fragment subscribers.
func NavigateToTab(state ViewState, history *History, tab TabID) ViewState {
	state = Reduce(state, Navigate{Tab: tab})
	history.Push(tab.String())

	return state
}

// Mount computes the initial state from the fragment present when the view starts.
func Mount(history *History) ViewState {
	return Reduce(NewViewState(), FragmentChanged{Fragment: history.Fragment()})
}
