package visual

// rule maps a base-name pattern to tag names. Exactly one of sub (plain
// substring) or re (regexp source) is set. A base name may collect tags
// from every rule that matches it.
type rule struct {
	sub  string
	re   string
	tags []string
}

// End-of-segment boundary used by regexp rules for short words that would
// otherwise fire inside unrelated segments ("Up" in "Upload").
const segEnd = `([A-Z0-9]|$)`

var tagRules = []rule{
	// arrows and motion
	{sub: "Arrow", tags: []string{"arrow", "direction"}},
	{sub: "Chevron", tags: []string{"chevron", "arrow", "direction"}},
	{re: `Up` + segEnd, tags: []string{"up", "direction"}},
	{re: `Down` + segEnd, tags: []string{"down", "direction"}},
	{re: `Left` + segEnd, tags: []string{"left", "direction"}},
	{re: `Right` + segEnd, tags: []string{"right", "direction"}},
	{sub: "Upload", tags: []string{"upload"}},
	{sub: "Download", tags: []string{"download"}},
	{sub: "Sync", tags: []string{"sync", "refresh"}},
	{sub: "Clockwise", tags: []string{"refresh"}},
	{sub: "Undo", tags: []string{"undo"}},
	{sub: "Redo", tags: []string{"redo"}},
	{sub: "Sort", tags: []string{"sort"}},
	{sub: "Swap", tags: []string{"swap"}},
	{sub: "Trending", tags: []string{"trend", "chart"}},
	{sub: "Navigation", tags: []string{"navigation", "direction"}},
	{sub: "Compass", tags: []string{"navigation", "direction"}},
	{sub: "Directions", tags: []string{"navigation", "map"}},
	{sub: "Routing", tags: []string{"navigation", "direction"}},
	// shapes
	{sub: "Circle", tags: []string{"circle", "shape", "round"}},
	{sub: "Square", tags: []string{"square", "shape", "geometry"}},
	{sub: "Triangle", tags: []string{"triangle", "shape", "geometry"}},
	{sub: "Diamond", tags: []string{"diamond", "shape", "geometry"}},
	{sub: "Pentagon", tags: []string{"shape", "geometry"}},
	{sub: "Oval", tags: []string{"shape", "round"}},
	{sub: "Star", tags: []string{"star", "shape", "award"}},
	{sub: "Heart", tags: []string{"heart", "shape", "emotion"}},
	{sub: "Shape", tags: []string{"shape", "geometry"}},
	{sub: "Cube", tags: []string{"shape", "geometry", "box"}},
	// people and emotion
	{sub: "Person", tags: []string{"person", "user"}},
	{sub: "People", tags: []string{"people", "team", "community"}},
	{sub: "Guest", tags: []string{"person", "user"}},
	{sub: "Contact", tags: []string{"person", "user"}},
	{sub: "Agents", tags: []string{"robot", "ai", "person"}},
	{sub: "Team", tags: []string{"team", "people"}},
	{sub: "Community", tags: []string{"community", "people"}},
	{sub: "Organization", tags: []string{"building", "team"}},
	{sub: "Emoji", tags: []string{"face", "emotion"}},
	{sub: "Smile", tags: []string{"happy", "emotion"}},
	{sub: "Laugh", tags: []string{"happy", "emotion"}},
	{re: `Sad` + segEnd, tags: []string{"sad", "emotion"}},
	{sub: "Angry", tags: []string{"angry", "emotion"}},
	{sub: "Hand", tags: []string{"hand", "person"}},
	{sub: "Thumb", tags: []string{"hand", "emotion"}},
	// time
	{sub: "Clock", tags: []string{"clock", "time"}},
	{sub: "Alarm", tags: []string{"alarm", "time", "notification"}},
	{sub: "Calendar", tags: []string{"calendar", "time", "schedule"}},
	{sub: "Timer", tags: []string{"timer", "time"}},
	{sub: "Stopwatch", tags: []string{"timer", "time"}},
	{sub: "Hourglass", tags: []string{"wait", "time"}},
	{sub: "History", tags: []string{"history", "time"}},
	{sub: "Snooze", tags: []string{"alarm", "time"}},
	// communication
	{sub: "Mail", tags: []string{"mail", "communication", "message"}},
	{sub: "Chat", tags: []string{"chat", "communication", "message"}},
	{sub: "Comment", tags: []string{"comment", "communication", "message"}},
	{sub: "Call", tags: []string{"call", "phone", "communication"}},
	{sub: "Phone", tags: []string{"phone", "device", "communication"}},
	{sub: "Voicemail", tags: []string{"call", "audio", "message"}},
	{sub: "Send", tags: []string{"send", "communication"}},
	{sub: "Share", tags: []string{"share", "communication"}},
	{sub: "Megaphone", tags: []string{"announcement", "notification"}},
	{sub: "Alert", tags: []string{"notification", "warning"}},
	{sub: "Reply", tags: []string{"communication", "message"}},
	// devices
	{sub: "Desktop", tags: []string{"desktop", "computer", "device", "screen"}},
	{sub: "Laptop", tags: []string{"laptop", "computer", "device"}},
	{sub: "Tablet", tags: []string{"tablet", "device"}},
	{sub: "Keyboard", tags: []string{"keyboard", "device"}},
	{sub: "Mouse", tags: []string{"mouse", "device"}},
	{sub: "Print", tags: []string{"printer", "device"}},
	{sub: "Camera", tags: []string{"camera", "photo", "device"}},
	{sub: "Screen", tags: []string{"screen", "device"}},
	{re: `^Tv$`, tags: []string{"tv", "screen", "device"}},
	{sub: "Battery", tags: []string{"battery", "power", "device"}},
	{sub: "Power", tags: []string{"power"}},
	{sub: "Plug", tags: []string{"plug", "power"}},
	{sub: "Bluetooth", tags: []string{"bluetooth", "device"}},
	{sub: "Wifi", tags: []string{"wifi", "device"}},
	{sub: "Usb", tags: []string{"usb", "device", "storage"}},
	{sub: "Server", tags: []string{"server", "tech", "storage"}},
	{sub: "HardDrive", tags: []string{"storage", "device"}},
	{sub: "Router", tags: []string{"wifi", "device"}},
	{sub: "SerialPort", tags: []string{"device", "tech"}},
	{sub: "Headphones", tags: []string{"audio", "device"}},
	{sub: "Speaker", tags: []string{"volume", "audio", "device"}},
	{re: `Mic` + segEnd, tags: []string{"microphone", "audio"}},
	// security
	{sub: "Lock", tags: []string{"lock", "security", "privacy"}},
	{re: `Key` + segEnd, tags: []string{"key", "security"}},
	{sub: "Shield", tags: []string{"shield", "security"}},
	{sub: "Fingerprint", tags: []string{"fingerprint", "security", "privacy"}},
	{sub: "Password", tags: []string{"password", "security"}},
	{sub: "Incognito", tags: []string{"privacy", "visibility"}},
	{re: `Eye` + segEnd, tags: []string{"visibility", "privacy"}},
	{sub: "Certificate", tags: []string{"security", "award"}},
	{sub: "Prohibited", tags: []string{"dismiss", "warning"}},
	// commerce
	{sub: "Money", tags: []string{"money", "commerce"}},
	{sub: "Payment", tags: []string{"payment", "money", "commerce"}},
	{sub: "Wallet", tags: []string{"wallet", "money", "commerce"}},
	{sub: "Savings", tags: []string{"bank", "money"}},
	{sub: "Bank", tags: []string{"bank", "building", "commerce"}},
	{sub: "Cart", tags: []string{"cart", "shopping", "commerce"}},
	{sub: "Shopping", tags: []string{"shopping", "commerce", "bag"}},
	{sub: "Retail", tags: []string{"shopping", "building", "commerce"}},
	{sub: "Gift", tags: []string{"gift", "celebration", "commerce"}},
	{sub: "Receipt", tags: []string{"receipt", "commerce"}},
	{re: `^Tag`, tags: []string{"tag", "commerce"}},
	{sub: "Scales", tags: []string{"commerce"}},
	// nature
	{sub: "Plant", tags: []string{"plant", "nature"}},
	{sub: "Leaf", tags: []string{"leaf", "plant", "nature"}},
	{sub: "Tree", tags: []string{"tree", "plant", "nature"}},
	{sub: "Animal", tags: []string{"animal", "nature"}},
	{sub: "Weather", tags: []string{"weather", "nature"}},
	{sub: "Sunny", tags: []string{"sun", "weather", "light"}},
	{sub: "Moon", tags: []string{"moon", "weather"}},
	{sub: "Rain", tags: []string{"rain", "weather"}},
	{sub: "Snow", tags: []string{"snow", "weather"}},
	{sub: "Cloudy", tags: []string{"cloud", "weather"}},
	{sub: "Thunderstorm", tags: []string{"rain", "weather"}},
	{sub: "Mountain", tags: []string{"mountain", "nature"}},
	{sub: "Earth", tags: []string{"earth", "world", "nature"}},
	{sub: "Globe", tags: []string{"world", "earth"}},
	{sub: "Beach", tags: []string{"nature", "travel"}},
	{sub: "Fire", tags: []string{"fire"}},
	{sub: "Flash", tags: []string{"fire", "power", "light"}},
	// food and drink
	{sub: "Food", tags: []string{"food"}},
	{sub: "Drink", tags: []string{"drink"}},
	{sub: "Coffee", tags: []string{"coffee", "drink"}},
	{sub: "Beer", tags: []string{"beer", "drink"}},
	{sub: "Wine", tags: []string{"wine", "drink"}},
	{sub: "Cake", tags: []string{"food", "celebration"}},
	// tech
	{sub: "Code", tags: []string{"code", "tech", "development"}},
	{sub: "Braces", tags: []string{"code", "tech"}},
	{sub: "Script", tags: []string{"code", "tech"}},
	{sub: "Developer", tags: []string{"development", "tech"}},
	{sub: "Bug", tags: []string{"bug", "development", "tech"}},
	{sub: "Database", tags: []string{"database", "storage", "tech"}},
	{sub: "Branch", tags: []string{"development", "tech"}},
	{re: `^Bot`, tags: []string{"robot", "ai", "tech"}},
	{sub: "Brain", tags: []string{"ai", "idea", "tech"}},
	{sub: "Rocket", tags: []string{"rocket", "tech"}},
	{sub: "Wrench", tags: []string{"tool", "settings"}},
	{sub: "Toolbox", tags: []string{"tool", "settings", "container"}},
	{sub: "Settings", tags: []string{"settings", "tool"}},
	{sub: "Options", tags: []string{"settings", "filter"}},
	{sub: "Console", tags: []string{"terminal", "code", "tech"}},
	{sub: "Beaker", tags: []string{"science", "tech"}},
	{sub: "Cloud", tags: []string{"cloud", "tech"}},
	// media
	{sub: "Play", tags: []string{"play", "media"}},
	{sub: "Pause", tags: []string{"pause", "media"}},
	{re: `^Stop$`, tags: []string{"stop", "media"}},
	{sub: "Record", tags: []string{"record", "media"}},
	{sub: "Rewind", tags: []string{"media"}},
	{sub: "FastForward", tags: []string{"media"}},
	{sub: "Music", tags: []string{"music", "audio", "media"}},
	{sub: "Video", tags: []string{"video", "media"}},
	{sub: "Filmstrip", tags: []string{"video", "media"}},
	{sub: "Image", tags: []string{"image", "photo", "media"}},
	{sub: "Album", tags: []string{"image", "music", "media"}},
	{sub: "Mute", tags: []string{"volume", "audio", "disabled"}},
	// containers
	{sub: "Folder", tags: []string{"folder", "container", "file"}},
	{sub: "Document", tags: []string{"document", "file", "container"}},
	{sub: "Notepad", tags: []string{"document", "file"}},
	{sub: "Archive", tags: []string{"archive", "container", "storage"}},
	{re: `Box` + segEnd, tags: []string{"box", "container"}},
	{sub: "Clipboard", tags: []string{"clipboard", "container"}},
	{sub: "Book", tags: []string{"book", "container"}},
	{sub: "Library", tags: []string{"library", "book", "container"}},
	{sub: "Briefcase", tags: []string{"briefcase", "bag", "container"}},
	{sub: "Backpack", tags: []string{"bag", "container", "travel"}},
	{sub: "Drawer", tags: []string{"container", "storage"}},
	{sub: "Collections", tags: []string{"container", "multiple"}},
	// actions and misc
	{re: `^Add`, tags: []string{"add"}},
	{sub: "Subtract", tags: []string{"remove"}},
	{sub: "Delete", tags: []string{"delete", "remove"}},
	{sub: "Dismiss", tags: []string{"dismiss", "remove"}},
	{sub: "Bin", tags: []string{"delete", "remove"}},
	{sub: "Eraser", tags: []string{"delete", "edit"}},
	{sub: "Broom", tags: []string{"delete"}},
	{sub: "Edit", tags: []string{"edit"}},
	{re: `^Pen` + segEnd, tags: []string{"edit", "text"}},
	{sub: "Search", tags: []string{"search"}},
	{sub: "Zoom", tags: []string{"zoom", "search"}},
	{sub: "Filter", tags: []string{"filter"}},
	{sub: "Save", tags: []string{"save"}},
	{sub: "Copy", tags: []string{"copy"}},
	{sub: "Paste", tags: []string{"paste", "clipboard"}},
	{sub: "Attach", tags: []string{"attach", "link"}},
	{sub: "Link", tags: []string{"link"}},
	{re: `^Pin`, tags: []string{"pin"}},
	{sub: "Flag", tags: []string{"flag"}},
	{sub: "Bookmark", tags: []string{"bookmark", "save"}},
	{sub: "Checkmark", tags: []string{"check"}},
	{sub: "Warning", tags: []string{"warning", "notification"}},
	{sub: "Error", tags: []string{"error", "warning"}},
	{sub: "Info", tags: []string{"info"}},
	{sub: "Question", tags: []string{"question", "help"}},
	{sub: "Home", tags: []string{"home", "building"}},
	{sub: "Location", tags: []string{"location", "map"}},
	{re: `^Map$`, tags: []string{"map", "location", "travel"}},
	{sub: "Vehicle", tags: []string{"vehicle", "travel"}},
	{sub: "Airplane", tags: []string{"travel", "vehicle"}},
	{sub: "Building", tags: []string{"building"}},
	{sub: "City", tags: []string{"building"}},
	{sub: "Trophy", tags: []string{"award", "celebration"}},
	{sub: "Ribbon", tags: []string{"award"}},
	{sub: "Crown", tags: []string{"award"}},
	{sub: "Badge", tags: []string{"award", "tag"}},
	{sub: "Balloon", tags: []string{"celebration"}},
	{sub: "Lightbulb", tags: []string{"idea", "light"}},
	{sub: "Sparkle", tags: []string{"sparkle", "ai", "celebration"}},
	{sub: "Wand", tags: []string{"sparkle", "idea"}},
	{sub: "Text", tags: []string{"text"}},
	{sub: "Font", tags: []string{"text"}},
	{sub: "Table", tags: []string{"table", "grid"}},
	{sub: "Grid", tags: []string{"grid"}},
	{re: `List` + segEnd, tags: []string{"list"}},
	{sub: "Data", tags: []string{"data", "chart"}},
	{sub: "Chart", tags: []string{"chart", "data"}},
	{sub: "Poll", tags: []string{"chart", "data"}},
	{sub: "Gauge", tags: []string{"chart", "data"}},
	{sub: "Target", tags: []string{"target"}},
	{re: `Off$`, tags: []string{"disabled"}},
	{sub: "Multiple", tags: []string{"multiple"}},
	{sub: "Paint", tags: []string{"edit", "idea"}},
	{sub: "Color", tags: []string{"edit", "idea"}},
	{sub: "Design", tags: []string{"idea", "edit"}},
	{sub: "Graduation", tags: []string{"award"}},
	{sub: "Stethoscope", tags: []string{"person"}},
	{re: `^Window`, tags: []string{"screen", "tech"}},
}
