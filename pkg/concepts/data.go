package concepts

// conceptTable is authored by hand and reviewed against the catalog: every
// fragment should occur as a segment of at least one entry name, though
// unmatched fragments are harmless.
var conceptTable = Mapping{
	"accept":       {"Checkmark", "Thumb", "Like"},
	"account":      {"Person", "Contact", "Guest"},
	"achievement":  {"Trophy", "Ribbon", "Crown", "Star"},
	"add":          {"Add", "Plus", "New"},
	"agent":        {"Agents", "Bot", "Person"},
	"ai":           {"Bot", "Sparkle", "Brain", "Agents"},
	"alarm":        {"Alarm", "Clock", "Alert"},
	"alert":        {"Alert", "Warning", "Important", "Megaphone"},
	"analytics":    {"Data", "Chart", "Poll", "Gauge", "Trending"},
	"animal":       {"Animal", "Cat", "Dog", "Rabbit", "Turtle"},
	"announce":     {"Megaphone", "Alert", "Send"},
	"approve":      {"Checkmark", "Thumb", "Shield"},
	"archive":      {"Archive", "Box", "Folder", "Zip"},
	"arrow":        {"Arrow", "Chevron", "Triangle"},
	"attach":       {"Attach", "Link", "Clipboard"},
	"attention":    {"Alert", "Warning", "Important", "Flag"},
	"audio":        {"Speaker", "Music", "Mic", "Headphones"},
	"award":        {"Trophy", "Ribbon", "Crown", "Badge"},
	"back":         {"Arrow", "Left", "Previous", "Undo"},
	"bag":          {"Shopping", "Briefcase", "Backpack"},
	"bank":         {"Bank", "Building", "Savings", "Money"},
	"battery":      {"Battery", "Charge", "Power"},
	"beer":         {"Drink", "Beer"},
	"bell":         {"Alert", "Alarm"},
	"bin":          {"Bin", "Delete", "Recycle"},
	"bird":         {"Animal"},
	"birthday":     {"Balloon", "Cake", "Gift"},
	"block":        {"Prohibited", "Shield", "Dismiss"},
	"board":        {"Board", "Grid", "Table"},
	"boat":         {"Vehicle", "Ship"},
	"book":         {"Book", "Notebook", "Library", "Bookmark"},
	"box":          {"Box", "Archive", "Cube"},
	"brain":        {"Brain", "Bot", "Lightbulb"},
	"broken":       {"Broken", "Heart", "Error", "Bug"},
	"browser":      {"Window", "Globe", "Open"},
	"brush":        {"Paint", "Brush", "Broom"},
	"bug":          {"Bug", "Error", "Warning"},
	"build":        {"Wrench", "Toolbox", "Settings"},
	"building":     {"Building", "City", "Home", "Organization"},
	"bus":          {"Vehicle", "Bus"},
	"business":     {"Briefcase", "Building", "Organization", "Payment"},
	"buy":          {"Cart", "Payment", "Shopping", "Money"},
	"calendar":     {"Calendar", "Clock", "Today"},
	"call":         {"Call", "Phone", "Voicemail"},
	"camera":       {"Camera", "Video", "Image", "Scan"},
	"cancel":       {"Dismiss", "Prohibited", "Subtract"},
	"car":          {"Vehicle", "Car"},
	"card":         {"Card", "Contact", "Payment", "Gift"},
	"cart":         {"Cart", "Shopping"},
	"cat":          {"Animal", "Cat"},
	"celebrate":    {"Balloon", "Trophy", "Sparkle", "Gift"},
	"certificate":  {"Certificate", "Ribbon", "Badge"},
	"chart":        {"Chart", "Data", "Poll", "Trending", "Gauge"},
	"chat":         {"Chat", "Comment", "Send"},
	"check":        {"Checkmark", "Clipboard", "Task"},
	"chevron":      {"Chevron", "Arrow"},
	"city":         {"City", "Building"},
	"clean":        {"Broom", "Eraser", "Bin", "Sparkle"},
	"clear":        {"Dismiss", "Eraser", "Broom", "Delete"},
	"clipboard":    {"Clipboard", "Paste", "Task"},
	"clock":        {"Clock", "Timer", "History", "Stopwatch", "Hourglass"},
	"close":        {"Dismiss", "Arrow", "Minimize"},
	"cloud":        {"Cloud", "Weather"},
	"code":         {"Code", "Braces", "Script", "Window", "Developer"},
	"coffee":       {"Drink", "Coffee"},
	"collection":   {"Collections", "Library", "Bookmark", "Box"},
	"college":      {"Hat", "Graduation", "Book"},
	"color":        {"Color", "Paint", "Fill"},
	"comment":      {"Comment", "Chat"},
	"community":    {"People", "Community", "Team"},
	"company":      {"Building", "Organization", "Briefcase"},
	"compass":      {"Compass", "Navigation", "Location"},
	"complete":     {"Checkmark", "Circle", "Task"},
	"computer":     {"Desktop", "Laptop", "Window"},
	"configure":    {"Settings", "Options", "Wrench", "Toolbox"},
	"confirm":      {"Checkmark", "Thumb"},
	"connect":      {"Plug", "Connected", "Link", "Bluetooth"},
	"console":      {"Console", "Window", "Code"},
	"contact":      {"Contact", "Person", "Card", "Call"},
	"copy":         {"Copy", "Clipboard", "Document"},
	"create":       {"Add", "Pen", "Edit", "New"},
	"credit":       {"Payment", "Card", "Money"},
	"cut":          {"Cut", "Scissors"},
	"dark":         {"Dark", "Theme", "Moon", "Incognito"},
	"dashboard":    {"Board", "Gauge", "Grid", "Data"},
	"data":         {"Data", "Database", "Chart", "Poll"},
	"database":     {"Database", "Server", "Data"},
	"date":         {"Calendar", "Clock", "Today"},
	"delete":       {"Delete", "Dismiss", "Bin", "Eraser", "Subtract", "Broom"},
	"deploy":       {"Rocket", "Cloud", "Arrow"},
	"design":       {"Design", "Paint", "Shapes", "Pen"},
	"desktop":      {"Desktop", "Window"},
	"dev":          {"Code", "Developer", "Window", "Bug"},
	"developer":    {"Developer", "Code", "Window", "Braces"},
	"device":       {"Phone", "Desktop", "Laptop", "Tablet"},
	"direction":    {"Directions", "Compass", "Navigation", "Arrow"},
	"disconnect":   {"Plug", "Disconnected", "Link", "Dismiss"},
	"dislike":      {"Thumb", "Dislike"},
	"doc":          {"Document", "Notepad", "Page"},
	"doctor":       {"Stethoscope", "Syringe"},
	"document":     {"Document", "Notepad", "Pdf", "Page"},
	"dog":          {"Animal", "Dog"},
	"down":         {"Down", "Arrow", "Chevron"},
	"download":     {"Download", "Arrow", "Cloud", "Save"},
	"draw":         {"Pen", "Paint", "Brush", "Edit"},
	"drink":        {"Drink", "Beer", "Coffee", "Wine", "Bottle"},
	"drive":        {"Hard", "Drive", "Vehicle", "Car"},
	"duplicate":    {"Copy", "Document", "Multiple"},
	"edit":         {"Edit", "Pen", "Compose"},
	"education":    {"Hat", "Graduation", "Book", "Library"},
	"email":        {"Mail", "Send", "Mailbox"},
	"emoji":        {"Emoji", "Smile", "Laugh", "Sad", "Angry"},
	"empty":        {"Circle", "Square", "Prohibited"},
	"erase":        {"Eraser", "Delete", "Broom"},
	"error":        {"Error", "Warning", "Dismiss", "Bug"},
	"expand":       {"Expand", "Arrow", "Maximize", "Chevron"},
	"experiment":   {"Beaker", "Flask"},
	"export":       {"Export", "Arrow", "Share", "Send"},
	"eye":          {"Eye", "Incognito"},
	"face":         {"Emoji", "Person"},
	"fast":         {"Fast", "Forward", "Flash", "Rocket"},
	"favorite":     {"Star", "Heart", "Bookmark", "Ribbon"},
	"feedback":     {"Feedback", "Person", "Comment", "Thumb"},
	"file":         {"Document", "Folder", "Page"},
	"filter":       {"Filter", "Options"},
	"find":         {"Search", "Zoom", "Eye"},
	"finish":       {"Checkmark", "Flag", "Target"},
	"fire":         {"Fire", "Flash"},
	"fix":          {"Wrench", "Toolbox", "Bug"},
	"flag":         {"Flag"},
	"flash":        {"Flash", "Fire", "Camera"},
	"folder":       {"Folder", "Archive", "Directory"},
	"food":         {"Food", "Apple", "Cake", "Egg", "Pizza"},
	"forbidden":    {"Prohibited", "Dismiss", "Lock"},
	"forecast":     {"Weather", "Cloud", "Rain", "Sunny"},
	"forward":      {"Forward", "Arrow", "Fast", "Next", "Share"},
	"friend":       {"People", "Person", "Add"},
	"game":         {"Trophy", "Target", "Rocket"},
	"gift":         {"Gift", "Balloon"},
	"git":          {"Branch", "Fork", "Code"},
	"globe":        {"Globe", "Earth", "Map"},
	"go":           {"Arrow", "Play", "Rocket"},
	"grade":        {"Hat", "Graduation", "Star", "Ribbon"},
	"graph":        {"Chart", "Data", "Trending", "Poll"},
	"grid":         {"Grid", "Table", "Board"},
	"group":        {"People", "Team", "Community", "Organization"},
	"hand":         {"Hand", "Wave", "Thumb"},
	"happy":        {"Emoji", "Smile", "Laugh"},
	"hardware":     {"Developer", "Board", "Hard", "Drive", "Usb"},
	"health":       {"Heart", "Stethoscope", "Syringe"},
	"hear":         {"Headphones", "Speaker", "Mic"},
	"heart":        {"Heart"},
	"help":         {"Question", "Chat", "Help", "Info"},
	"hidden":       {"Eye", "Off", "Incognito"},
	"hide":         {"Eye", "Off", "Incognito"},
	"history":      {"History", "Clock", "Arrow"},
	"home":         {"Home", "Building"},
	"hospital":     {"Stethoscope", "Syringe", "Bed"},
	"hot":          {"Fire", "Flash", "Trending"},
	"hotel":        {"Bed", "Building", "Briefcase"},
	"hourglass":    {"Hourglass", "Timer"},
	"house":        {"Home", "Building"},
	"idea":         {"Lightbulb", "Sparkle", "Design", "Brain"},
	"image":        {"Image", "Camera", "Filmstrip"},
	"import":       {"Import", "Arrow", "Download"},
	"important":    {"Important", "Alert", "Warning", "Flag", "Star"},
	"inbox":        {"Mail", "Mailbox", "Archive"},
	"info":         {"Info", "Question", "Search"},
	"insert":       {"Add", "Arrow", "Import"},
	"internet":     {"Globe", "Wifi", "Cloud", "Earth"},
	"invisible":    {"Eye", "Off", "Incognito"},
	"invite":       {"Person", "Add", "Mail", "Send"},
	"key":          {"Key", "Password", "Lock"},
	"keyboard":     {"Keyboard"},
	"lab":          {"Beaker", "Flask", "Edit"},
	"label":        {"Tag", "Bookmark"},
	"laptop":       {"Laptop", "Desktop"},
	"launch":       {"Rocket", "Open", "Play", "Send"},
	"layout":       {"Layout", "Grid", "Board", "Slide"},
	"leaf":         {"Leaf", "Plant"},
	"learn":        {"Book", "Hat", "Graduation", "Library"},
	"left":         {"Left", "Arrow", "Chevron"},
	"light":        {"Lightbulb", "Flash", "Sunny", "Filament"},
	"like":         {"Thumb", "Like", "Heart", "Star"},
	"link":         {"Link", "Attach", "Share"},
	"list":         {"List", "Task", "Table", "Clipboard"},
	"location":     {"Location", "Map", "Navigation", "Compass"},
	"lock":         {"Lock", "Closed", "Key", "Shield", "Password"},
	"love":         {"Heart"},
	"machine":      {"Bot", "Settings", "Developer"},
	"mail":         {"Mail", "Mailbox", "Send"},
	"map":          {"Map", "Location", "Globe", "Directions"},
	"media":        {"Play", "Video", "Music", "Filmstrip", "Image"},
	"medical":      {"Stethoscope", "Syringe", "Heart"},
	"meeting":      {"People", "Calendar", "Video", "Call"},
	"message":      {"Chat", "Mail", "Comment", "Send"},
	"microphone":   {"Mic", "Voicemail"},
	"minus":        {"Subtract", "Dismiss"},
	"money":        {"Money", "Payment", "Wallet", "Savings", "Bank"},
	"moon":         {"Moon", "Weather", "Dark"},
	"more":         {"More", "Add", "Options"},
	"mountain":     {"Mountain", "Trail"},
	"mouse":        {"Mouse", "Cursor"},
	"move":         {"Arrow", "Swap", "Routing"},
	"movie":        {"Video", "Filmstrip", "Play", "Clip"},
	"music":        {"Music", "Note", "Speaker", "Headphones"},
	"mute":         {"Mute", "Speaker", "Mic", "Off"},
	"nature":       {"Leaf", "Plant", "Tree", "Mountain", "Weather"},
	"navigate":     {"Navigation", "Compass", "Directions", "Arrow"},
	"network":      {"Wifi", "Router", "Globe", "Server", "Organization"},
	"new":          {"Add", "Sparkle", "New"},
	"news":         {"Megaphone", "Document", "Mail"},
	"next":         {"Next", "Arrow", "Chevron", "Forward"},
	"night":        {"Moon", "Dark", "Weather"},
	"no":           {"Prohibited", "Dismiss", "Thumb"},
	"note":         {"Note", "Notepad", "Notebook", "Music"},
	"notification": {"Alert", "Megaphone"},
	"office":       {"Briefcase", "Building", "Desktop"},
	"ok":           {"Checkmark", "Thumb"},
	"open":         {"Open", "Folder", "Arrow", "Unlock"},
	"options":      {"Options", "Settings", "Filter", "More"},
	"organization": {"Organization", "Building", "People"},
	"paint":        {"Paint", "Brush", "Bucket", "Color"},
	"palette":      {"Color", "Paint"},
	"paperclip":    {"Attach"},
	"password":     {"Password", "Key", "Lock", "Fingerprint"},
	"paste":        {"Paste", "Clipboard"},
	"pause":        {"Pause"},
	"pay":          {"Payment", "Money", "Wallet", "Cart"},
	"pen":          {"Pen", "Edit"},
	"people":       {"People", "Person", "Community", "Team", "Guest"},
	"person":       {"Person", "People", "Contact"},
	"pet":          {"Animal", "Cat", "Dog", "Rabbit"},
	"phone":        {"Phone", "Call"},
	"photo":        {"Image", "Camera"},
	"picture":      {"Image", "Camera", "Filmstrip"},
	"pin":          {"Pin", "Location"},
	"plane":        {"Airplane"},
	"plant":        {"Plant", "Leaf", "Tree", "Grass"},
	"play":         {"Play", "Video", "Music"},
	"plus":         {"Add", "More"},
	"power":        {"Power", "Battery", "Flash", "Plug"},
	"present":      {"Gift", "Share", "Screen", "Slide"},
	"previous":     {"Previous", "Arrow", "Chevron", "Back"},
	"print":        {"Print"},
	"privacy":      {"Shield", "Lock", "Incognito", "Eye"},
	"private":      {"Lock", "Incognito", "Shield", "Eye"},
	"profile":      {"Person", "Contact", "Card"},
	"question":     {"Question", "Chat", "Help"},
	"quiet":        {"Mute", "Speaker", "Off"},
	"rain":         {"Weather", "Rain", "Cloud"},
	"read":         {"Book", "Mail", "Read", "Open"},
	"receipt":      {"Receipt", "Payment"},
	"record":       {"Record", "Mic", "Video"},
	"recycle":      {"Recycle", "Bin", "Arrow"},
	"redo":         {"Redo", "Arrow"},
	"refresh":      {"Arrow", "Clockwise", "Sync"},
	"remove":       {"Delete", "Dismiss", "Subtract", "Bin"},
	"rename":       {"Edit", "Pen", "Text"},
	"repair":       {"Wrench", "Toolbox"},
	"repeat":       {"Repeat", "Arrow", "Sync"},
	"reply":        {"Reply", "Arrow", "Chat"},
	"report":       {"Document", "Data", "Chart", "Flag"},
	"restart":      {"Arrow", "Clockwise", "Power"},
	"reward":       {"Trophy", "Gift", "Ribbon", "Star"},
	"right":        {"Right", "Arrow", "Chevron"},
	"robot":        {"Bot", "Agents"},
	"rotate":       {"Arrow", "Clockwise", "Counterclockwise"},
	"run":          {"Play", "Rocket", "Flash"},
	"sad":          {"Emoji", "Sad"},
	"save":         {"Save", "Download", "Bookmark", "Pin"},
	"school":       {"Hat", "Graduation", "Book", "Backpack"},
	"science":      {"Beaker", "Brain", "Rocket"},
	"screen":       {"Screen", "Desktop", "Tv", "Window"},
	"search":       {"Search", "Zoom", "Filter"},
	"secure":       {"Shield", "Lock", "Key", "Fingerprint", "Certificate"},
	"security":     {"Shield", "Lock", "Key", "Fingerprint", "Password"},
	"see":          {"Eye", "Search", "Zoom"},
	"send":         {"Send", "Mail", "Share", "Arrow"},
	"server":       {"Server", "Database", "Cloud"},
	"settings":     {"Settings", "Options", "Wrench", "Toolbox"},
	"shape":        {"Shapes", "Circle", "Square", "Triangle", "Diamond"},
	"share":        {"Share", "Send", "Arrow", "Export"},
	"shield":       {"Shield", "Lock"},
	"ship":         {"Vehicle", "Ship", "Send", "Rocket"},
	"shop":         {"Shopping", "Cart", "Building", "Retail"},
	"show":         {"Eye", "Open", "Share", "Screen"},
	"shuffle":      {"Arrow", "Swap"},
	"sick":         {"Stethoscope", "Syringe", "Emoji", "Sad"},
	"sign":         {"Pen", "Edit", "Certificate"},
	"silence":      {"Mute", "Speaker", "Off"},
	"sleep":        {"Bed", "Moon", "Snooze"},
	"slow":         {"Hourglass", "Timer", "History"},
	"snow":         {"Weather", "Snow"},
	"sort":         {"Sort", "Arrow", "Filter"},
	"sound":        {"Speaker", "Music", "Headphones", "Mic"},
	"speak":        {"Mic", "Chat", "Megaphone", "Person"},
	"sport":        {"Trophy", "Target"},
	"star":         {"Star", "Sparkle", "Ribbon"},
	"start":        {"Play", "Rocket", "Flag", "Power"},
	"stats":        {"Data", "Chart", "Poll", "Gauge", "Trending"},
	"stop":         {"Stop", "Prohibited", "Pause", "Dismiss"},
	"storage":      {"Database", "Hard", "Drive", "Archive", "Box"},
	"store":        {"Building", "Retail", "Cart", "Save", "Database"},
	"student":      {"Hat", "Graduation", "Backpack", "Person"},
	"study":        {"Book", "Library", "Notebook", "Hat"},
	"success":      {"Checkmark", "Trophy", "Star", "Sparkle"},
	"summer":       {"Weather", "Sunny", "Beach", "Umbrella"},
	"sun":          {"Sunny", "Weather"},
	"support":      {"Question", "Chat", "Help", "Person"},
	"switch":       {"Swap", "Arrow", "Toggle"},
	"sync":         {"Sync", "Arrow", "Cloud"},
	"table":        {"Table", "Grid"},
	"tag":          {"Tag", "Bookmark", "Label"},
	"talk":         {"Chat", "Mic", "Call", "Comment"},
	"target":       {"Target", "Arrow", "Flag"},
	"task":         {"Task", "Clipboard", "Checkmark", "List"},
	"team":         {"Team", "People", "Community", "Organization"},
	"temperature":  {"Weather", "Fire"},
	"terminal":     {"Console", "Window", "Code"},
	"test":         {"Beaker", "Clipboard", "Checkmark", "Bug"},
	"text":         {"Text", "Font", "Document", "Pen"},
	"theme":        {"Theme", "Dark", "Color", "Paint"},
	"ticket":       {"Receipt", "Tag"},
	"time":         {"Clock", "Timer", "History", "Hourglass", "Calendar"},
	"timer":        {"Timer", "Stopwatch", "Clock", "Hourglass"},
	"today":        {"Today", "Calendar"},
	"tool":         {"Wrench", "Toolbox", "Settings", "Options"},
	"train":        {"Vehicle"},
	"trash":        {"Delete", "Bin", "Recycle", "Dismiss"},
	"travel":       {"Airplane", "Vehicle", "Map", "Globe", "Backpack"},
	"tree":         {"Tree", "Plant", "Evergreen"},
	"trend":        {"Trending", "Arrow", "Data", "Fire"},
	"trophy":       {"Trophy", "Crown"},
	"tv":           {"Tv", "Screen", "Video"},
	"undo":         {"Undo", "Arrow"},
	"university":   {"Hat", "Graduation", "Building", "Library"},
	"unlock":       {"Lock", "Open", "Key"},
	"up":           {"Up", "Arrow", "Chevron"},
	"update":       {"Arrow", "Sync", "Clockwise", "Edit"},
	"upload":       {"Upload", "Arrow", "Cloud"},
	"user":         {"Person", "People", "Contact", "Guest"},
	"vacation":     {"Beach", "Umbrella", "Airplane", "Sunny"},
	"video":        {"Video", "Camera", "Filmstrip", "Play", "Clip"},
	"view":         {"Eye", "Search", "Grid", "List"},
	"voice":        {"Mic", "Voicemail", "Speaker"},
	"volume":       {"Speaker", "Mute"},
	"vote":         {"Poll", "Thumb", "Checkmark"},
	"wait":         {"Hourglass", "Clock", "Timer"},
	"warning":      {"Warning", "Alert", "Important", "Error"},
	"watch":        {"Eye", "Clock", "Stopwatch", "Video"},
	"water":        {"Drink", "Bottle", "Rain", "Weather"},
	"weather":      {"Weather", "Sunny", "Rain", "Snow", "Cloudy", "Thunderstorm"},
	"web":          {"Globe", "Window", "Link", "Code"},
	"wifi":         {"Wifi", "Router", "Globe"},
	"win":          {"Trophy", "Crown", "Star", "Ribbon"},
	"window":       {"Window", "Desktop"},
	"wine":         {"Drink", "Wine"},
	"winter":       {"Weather", "Snow"},
	"work":         {"Briefcase", "Building", "Task", "Person"},
	"world":        {"Globe", "Earth", "Map"},
	"write":        {"Pen", "Edit", "Notepad", "Compose"},
	"wrong":        {"Dismiss", "Error", "Warning", "Prohibited"},
	"yes":          {"Checkmark", "Thumb"},
	"zip":          {"Zip", "Folder", "Archive"},
	"zoom":         {"Zoom", "Search"},
}
