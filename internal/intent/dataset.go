// Package intent holds the static intent dataset and the deterministic
// engine that scores normalized transcripts against it.
package intent

// Intent IDs. The set is closed; the resolver and response layers switch
// over these values.
const (
	NavHome             = "NAV_HOME"
	NavEvents           = "NAV_EVENTS"
	NavDashboard        = "NAV_DASHBOARD"
	NavCart             = "NAV_CART"
	NavLogin            = "NAV_LOGIN"
	NavSignup           = "NAV_SIGNUP"
	NavProfile          = "NAV_PROFILE"
	NavContact          = "NAV_CONTACT"
	NavAbout            = "NAV_ABOUT"
	NavEvent            = "NAV_EVENT"
	EventDetails        = "EVENT_DETAILS"
	EventWhen           = "EVENT_WHEN"
	EventWhere          = "EVENT_WHERE"
	EventPrice          = "EVENT_PRICE"
	EventPrize          = "EVENT_PRIZE"
	RegisterEvent       = "REGISTER_EVENT"
	DeptEvents          = "DEPT_EVENTS"
	DayEvents           = "DAY_EVENTS"
	QueryStats          = "QUERY_STATS"
	QueryUpcomingEvents = "QUERY_UPCOMING_EVENTS"
	AddToCart           = "ADD_TO_CART"
	AddCartAndCheckout  = "ADD_CART_AND_CHECKOUT"
	RemoveFromCart      = "REMOVE_FROM_CART"
	Checkout            = "CHECKOUT"
	Greeting            = "GREETING"
	Goodbye             = "GOODBYE"
	Thanks              = "THANKS"
	Help                = "HELP"
	InfoFest            = "INFO_FEST"
	InfoTiming          = "INFO_TIMING"
	FaqRefund           = "FAQ_REFUND"
	FaqTeamSize         = "FAQ_TEAM_SIZE"
	Unknown             = "UNKNOWN"
	LowConfidence       = "LOW_CONFIDENCE"
)

// ActionType enumerates what the UI layer should do with a response.
type ActionType string

const (
	ActionNavigate ActionType = "navigate"
	ActionQuery    ActionType = "query"
	ActionExecute  ActionType = "execute"
	ActionDisplay  ActionType = "display"
	ActionReply    ActionType = "reply"
)

// Action is the UI action declared on an intent definition. The definition is
// the single source of truth for the action shape; the resolver only fills in
// data, it never re-derives the action.
type Action struct {
	Type    ActionType     `json:"type"`
	Target  string         `json:"target,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Definition is one intent with its trigger patterns. Tokens prefixed with
// `$` are entity captures. Table order only matters for breaking score ties
// and for which perfect match short-circuits first.
type Definition struct {
	ID       string
	Patterns []string
	Action   *Action
}

func navigate(target string) *Action { return &Action{Type: ActionNavigate, Target: target} }
func display(target string) *Action  { return &Action{Type: ActionDisplay, Target: target} }
func query(target string) *Action    { return &Action{Type: ActionQuery, Target: target} }
func execute(target string) *Action  { return &Action{Type: ActionExecute, Target: target} }
func reply() *Action                 { return &Action{Type: ActionReply} }

// definitions is the static intent table, built once at load.
var definitions = []Definition{
	// Entity-bearing intents come before the generic navigation ones so they
	// win score ties on inputs like "show cse events".
	{ID: DeptEvents, Patterns: []string{
		"show $dept events",
		"$dept department events",
		"events of $dept department",
		"events by $dept",
		"what events does $dept have",
	}, Action: display("department_events")},
	{ID: DayEvents, Patterns: []string{
		"events on day $day",
		"day $day events",
		"show day $day events",
		"what events are on day $day",
		"events on $day",
	}, Action: display("day_events")},
	{ID: AddCartAndCheckout, Patterns: []string{
		"add $name to cart and checkout",
		"buy $name",
		"buy tickets for $name",
		"book $name",
		"purchase $name",
	}, Action: execute("add_and_checkout")},
	{ID: AddToCart, Patterns: []string{
		"add $name to cart",
		"put $name in cart",
		"add $name to my cart",
		"$name cart in add",
	}, Action: execute("add_to_cart")},
	{ID: RemoveFromCart, Patterns: []string{
		"remove $name from cart",
		"delete $name from cart",
		"take $name out of cart",
		"$name cart from remove",
	}, Action: execute("remove_from_cart")},
	{ID: RegisterEvent, Patterns: []string{
		"register for $name",
		"register me for $name",
		"sign me up for $name",
		"participate in $name",
		"enroll in $name",
		"$name for register",
	}, Action: execute("register")},
	{ID: EventWhen, Patterns: []string{
		"when is $name",
		"what time is $name",
		"what day is $name",
		"$name when is",
		"$name timing",
	}, Action: display("event_when")},
	{ID: EventWhere, Patterns: []string{
		"where is $name",
		"venue of $name",
		"venue for $name",
		"$name venue",
		"$name where is",
	}, Action: display("event_where")},
	{ID: EventPrice, Patterns: []string{
		"how much is $name",
		"price of $name",
		"ticket price of $name",
		"$name price",
		"$name how much is",
		"how much for $name",
	}, Action: display("event_price")},
	{ID: EventPrize, Patterns: []string{
		"prize for $name",
		"prize of $name",
		"$name prize",
		"what is prize for $name",
	}, Action: display("event_prize")},
	{ID: EventDetails, Patterns: []string{
		"tell me about $name",
		"details of $name",
		"what is $name",
		"$name details",
		"info about $name",
	}, Action: display("event")},
	{ID: NavEvent, Patterns: []string{
		"open $name page",
		"go to $name page",
		"open $name",
		"show $name page",
	}, Action: navigate("/events")},

	// Plain navigation.
	{ID: NavEvents, Patterns: []string{
		"show events",
		"show me events",
		"show all events",
		"open events",
		"events page",
		"what events are there",
		"list events",
	}, Action: navigate("/events")},
	{ID: NavHome, Patterns: []string{
		"go home",
		"go to home",
		"home page",
		"take me home",
		"go back home",
	}, Action: navigate("/")},
	{ID: NavDashboard, Patterns: []string{
		"open dashboard",
		"show dashboard",
		"my dashboard",
		"go to dashboard",
	}, Action: navigate("/dashboard")},
	{ID: NavCart, Patterns: []string{
		"open cart",
		"show cart",
		"show my cart",
		"go to cart",
		"what is in my cart",
	}, Action: navigate("/cart")},
	{ID: NavLogin, Patterns: []string{
		"log in",
		"login",
		"sign in",
		"open login",
		"log me in",
	}, Action: navigate("/login")},
	{ID: NavSignup, Patterns: []string{
		"sign up",
		"signup",
		"create account",
		"make account",
	}, Action: navigate("/signup")},
	{ID: NavProfile, Patterns: []string{
		"open profile",
		"show profile",
		"my profile",
		"my account",
	}, Action: navigate("/profile")},
	{ID: NavContact, Patterns: []string{
		"contact page",
		"contact us",
		"how to contact",
	}, Action: navigate("/contact")},
	{ID: NavAbout, Patterns: []string{
		"open about",
		"about page",
	}, Action: navigate("/about")},
	{ID: Checkout, Patterns: []string{
		"checkout",
		"proceed to checkout",
		"pay now",
		"complete my order",
	}, Action: navigate("/checkout")},

	// Account queries.
	{ID: QueryStats, Patterns: []string{
		"show my stats",
		"my statistics",
		"my stats",
		"show my registrations",
		"how many events have i registered",
	}, Action: query("stats")},
	{ID: QueryUpcomingEvents, Patterns: []string{
		"upcoming events",
		"show upcoming events",
		"what is coming up",
		"next events",
	}, Action: query("upcoming_events")},

	// Small talk and static info.
	{ID: Greeting, Patterns: []string{
		"hello",
		"hi",
		"hey",
		"good morning",
		"good afternoon",
		"good evening",
	}, Action: reply()},
	{ID: Goodbye, Patterns: []string{
		"bye",
		"goodbye",
		"bye bye",
		"see you",
	}, Action: reply()},
	{ID: Thanks, Patterns: []string{
		"thank you",
		"thanks",
		"thanks lot",
	}, Action: reply()},
	{ID: Help, Patterns: []string{
		"help",
		"help me",
		"what can you do",
		"what can i say",
		"how do you work",
	}, Action: reply()},
	{ID: InfoFest, Patterns: []string{
		"what is srijan",
		"tell me about srijan",
		"tell me about fest",
		"about fest",
		"what is fest",
	}, Action: reply()},
	{ID: InfoTiming, Patterns: []string{
		"fest timings",
		"fest schedule",
		"when does fest start",
		"when is fest",
		"when is srijan",
	}, Action: reply()},
	{ID: FaqRefund, Patterns: []string{
		"refund policy",
		"can i get refund",
		"money back",
		"cancel my ticket",
	}, Action: reply()},
	{ID: FaqTeamSize, Patterns: []string{
		"team size",
		"how many members in team",
		"how many people per team",
		"maximum team size",
	}, Action: reply()},
}

// Definitions returns the static intent table.
func Definitions() []Definition {
	return definitions
}

// Lookup returns the definition for an intent ID, or nil.
func Lookup(id string) *Definition {
	for i := range definitions {
		if definitions[i].ID == id {
			return &definitions[i]
		}
	}
	return nil
}
