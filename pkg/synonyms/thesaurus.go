package synonyms

import "context"

// Thesaurus is the fast first tier: a curated, in-memory synonym table
// focused on the vocabulary people actually use when hunting for icons.
type Thesaurus struct {
	table map[string][]string
}

// NewThesaurus returns the curated thesaurus.
func NewThesaurus() *Thesaurus {
	return &Thesaurus{table: thesaurusTable}
}

// Synonyms implements Provider. It never fails.
func (t *Thesaurus) Synonyms(_ context.Context, word string) ([]string, error) {
	return t.table[word], nil
}

var thesaurusTable = map[string][]string{
	"add":       {"create", "new", "plus", "insert", "append"},
	"alert":     {"warning", "alarm", "notification", "notice"},
	"back":      {"previous", "return", "undo", "behind"},
	"big":       {"large", "huge", "expand", "maximize"},
	"bin":       {"trash", "garbage", "waste", "delete"},
	"book":      {"read", "library", "notebook", "manual"},
	"broken":    {"damaged", "error", "bug", "faulty"},
	"bright":    {"light", "sun", "idea", "flash"},
	"buy":       {"purchase", "shop", "pay", "order"},
	"cancel":    {"dismiss", "abort", "stop", "close", "remove"},
	"change":    {"edit", "modify", "swap", "update", "switch"},
	"chart":     {"graph", "plot", "data", "diagram"},
	"chat":      {"talk", "message", "conversation", "discuss"},
	"check":     {"verify", "confirm", "tick", "validate"},
	"clean":     {"clear", "wipe", "sweep", "erase"},
	"close":     {"dismiss", "shut", "exit", "cancel"},
	"cold":      {"snow", "winter", "freeze", "ice"},
	"computer":  {"desktop", "laptop", "pc", "machine"},
	"copy":      {"duplicate", "clone", "replicate"},
	"correct":   {"check", "right", "valid", "fix"},
	"danger":    {"warning", "alert", "hazard", "risk"},
	"dark":      {"night", "moon", "black", "shadow"},
	"delete":    {"remove", "erase", "trash", "discard", "clear"},
	"down":      {"below", "descend", "lower", "drop"},
	"drink":     {"beverage", "coffee", "beer", "wine", "water"},
	"edit":      {"modify", "change", "write", "revise"},
	"email":     {"mail", "message", "letter", "inbox"},
	"end":       {"finish", "stop", "complete", "final"},
	"fast":      {"quick", "rapid", "speed", "swift"},
	"favorite":  {"star", "heart", "like", "bookmark", "preferred"},
	"find":      {"search", "locate", "discover", "lookup"},
	"finish":    {"complete", "end", "done", "checkmark"},
	"fix":       {"repair", "mend", "patch", "wrench"},
	"friend":    {"person", "buddy", "contact", "people"},
	"fun":       {"happy", "play", "game", "celebration"},
	"go":        {"start", "play", "launch", "begin"},
	"grow":      {"plant", "expand", "increase", "trend"},
	"happy":     {"smile", "joy", "glad", "cheerful"},
	"hide":      {"conceal", "invisible", "private", "mask"},
	"hot":       {"fire", "warm", "heat", "trending"},
	"idea":      {"lightbulb", "thought", "concept", "insight"},
	"important": {"urgent", "critical", "priority", "essential"},
	"late":      {"clock", "delay", "overdue", "slow"},
	"leave":     {"exit", "door", "quit", "depart"},
	"letter":    {"mail", "message", "envelope", "text"},
	"look":      {"see", "view", "eye", "watch", "search"},
	"loud":      {"volume", "speaker", "megaphone", "noise"},
	"love":      {"heart", "like", "favorite", "adore"},
	"mistake":   {"error", "bug", "wrong", "fault"},
	"money":     {"cash", "currency", "payment", "wallet", "coin"},
	"music":     {"song", "audio", "sound", "melody"},
	"new":       {"add", "fresh", "create", "recent"},
	"next":      {"forward", "continue", "following", "advance"},
	"note":      {"memo", "notepad", "comment", "remark"},
	"old":       {"history", "archive", "past", "ancient"},
	"open":      {"unlock", "launch", "expand", "access"},
	"paper":     {"document", "page", "sheet", "note"},
	"pause":     {"wait", "hold", "suspend", "break"},
	"photo":     {"image", "picture", "camera", "snapshot"},
	"picture":   {"image", "photo", "illustration", "drawing"},
	"place":     {"location", "pin", "map", "spot"},
	"present":   {"gift", "show", "display", "current"},
	"quick":     {"fast", "rapid", "flash", "instant"},
	"quiet":     {"mute", "silent", "hush", "still"},
	"remove":    {"delete", "erase", "eliminate", "discard"},
	"rest":      {"pause", "sleep", "bed", "break"},
	"safe":      {"secure", "lock", "shield", "protected"},
	"save":      {"store", "keep", "preserve", "download", "bookmark"},
	"say":       {"speak", "talk", "chat", "tell"},
	"secret":    {"private", "hidden", "lock", "confidential"},
	"send":      {"dispatch", "mail", "share", "transmit"},
	"show":      {"display", "present", "reveal", "view"},
	"sick":      {"ill", "health", "medical", "unwell"},
	"small":     {"minimize", "tiny", "little", "compact"},
	"smart":     {"brain", "idea", "clever", "intelligent"},
	"sound":     {"audio", "volume", "speaker", "noise"},
	"speak":     {"talk", "chat", "voice", "say"},
	"start":     {"begin", "play", "launch", "go"},
	"stop":      {"halt", "end", "pause", "block"},
	"story":     {"book", "news", "article", "tale"},
	"strong":    {"shield", "power", "secure", "solid"},
	"talk":      {"chat", "speak", "discuss", "converse"},
	"team":      {"group", "people", "crew", "squad"},
	"tell":      {"say", "speak", "announce", "inform"},
	"think":     {"brain", "idea", "consider", "reflect"},
	"tiny":      {"small", "minimize", "little", "mini"},
	"trash":     {"bin", "garbage", "delete", "waste"},
	"trip":      {"travel", "journey", "vacation", "voyage"},
	"turn":      {"rotate", "spin", "switch", "arrow"},
	"upload":    {"send", "share", "publish", "transfer"},
	"urgent":    {"important", "alert", "critical", "priority"},
	"warm":      {"hot", "fire", "sun", "heat"},
	"watch":     {"view", "see", "eye", "observe", "clock"},
	"work":      {"job", "briefcase", "office", "task"},
	"write":     {"edit", "pen", "compose", "note"},
	"wrong":     {"error", "mistake", "incorrect", "invalid"},
}
