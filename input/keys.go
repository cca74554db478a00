// Package input implements spec.md §3.6/§4.5/§8: the global input-event
// ring, scan-code translation, and per-project action channels with
// composite bindings. Grounded on
// original_source/.../Engine/InputSystem.hpp and
// original_source/.../OS/HID.h (the BB framework's HID layer).
package input

// Key is the engine's portable keyboard key enum. The source HID.h
// declares these through an X-macro (KEYBOARD_KEY_D) so the enum and its
// string table cannot drift apart; Go has no preprocessor, so the same
// invariant is kept with a single ordered table (keyTable below) that
// both the enum constants and ScanCodeToKey/Key.String are generated
// from by hand — one list, not two.
type Key uint32

const (
	KeyNone Key = iota
	KeyEscape
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyMinus
	KeyEquals
	KeyBackspace
	KeyTab
	KeyQ
	KeyW
	KeyE
	KeyR
	KeyT
	KeyY
	KeyU
	KeyI
	KeyO
	KeyP
	KeyBracketLeft
	KeyBracketRight
	KeyReturn
	KeyControlLeft
	KeyA
	KeyS
	KeyD
	KeyF
	KeyG
	KeyH
	KeyJ
	KeyK
	KeyL
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyShiftLeft
	KeyBackslash
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyB
	KeyN
	KeyM
	KeyComma
	KeyPeriod
	KeySlash
	KeyShiftRight
	KeyNumpadMultiply
	KeyAltLeft
	KeySpacebar
	KeyCapsLock

	keyCount
)

// keyTable mirrors HID.h's KEYBOARD_KEY_D list: {name, scan code}. It is
// the single source of truth for both the name table and the scan-code
// lookup table built in init, so the two can never drift.
var keyTable = [keyCount]struct {
	name string
	scan byte
}{
	KeyNone:           {"NOKEY", 0x00},
	KeyEscape:         {"ESCAPE", 0x01},
	Key1:              {"KEY_1", 0x02},
	Key2:              {"KEY_2", 0x03},
	Key3:              {"KEY_3", 0x04},
	Key4:              {"KEY_4", 0x05},
	Key5:              {"KEY_5", 0x06},
	Key6:              {"KEY_6", 0x07},
	Key7:              {"KEY_7", 0x08},
	Key8:              {"KEY_8", 0x09},
	Key9:              {"KEY_9", 0x0A},
	Key0:              {"KEY_0", 0x0B},
	KeyMinus:          {"MINUS", 0x0C},
	KeyEquals:         {"EQUALS", 0x0D},
	KeyBackspace:      {"BACKSPACE", 0x0E},
	KeyTab:            {"TAB", 0x0F},
	KeyQ:              {"Q", 0x10},
	KeyW:              {"W", 0x11},
	KeyE:              {"E", 0x12},
	KeyR:              {"R", 0x13},
	KeyT:              {"T", 0x14},
	KeyY:              {"Y", 0x15},
	KeyU:              {"U", 0x16},
	KeyI:              {"I", 0x17},
	KeyO:              {"O", 0x18},
	KeyP:              {"P", 0x19},
	KeyBracketLeft:    {"BRACKETLEFT", 0x1A},
	KeyBracketRight:   {"BRACKETRIGHT", 0x1B},
	KeyReturn:         {"RETURN", 0x1C},
	KeyControlLeft:    {"CONTROLLEFT", 0x1D},
	KeyA:              {"A", 0x1E},
	KeyS:              {"S", 0x1F},
	KeyD:              {"D", 0x20},
	KeyF:              {"F", 0x21},
	KeyG:              {"G", 0x22},
	KeyH:              {"H", 0x23},
	KeyJ:              {"J", 0x24},
	KeyK:              {"K", 0x25},
	KeyL:              {"L", 0x26},
	KeySemicolon:      {"SEMICOLON", 0x27},
	KeyApostrophe:     {"APOSTROPHE", 0x28},
	KeyGrave:          {"GRAVE", 0x29},
	KeyShiftLeft:      {"SHIFTLEFT", 0x2A},
	KeyBackslash:      {"BACKSLASH", 0x2B},
	KeyZ:              {"Z", 0x2C},
	KeyX:              {"X", 0x2D},
	KeyC:              {"C", 0x2E},
	KeyV:              {"V", 0x2F},
	KeyB:              {"B", 0x30},
	KeyN:              {"N", 0x31},
	KeyM:              {"M", 0x32},
	KeyComma:          {"COMMA", 0x33},
	KeyPeriod:         {"PERIOD", 0x34},
	KeySlash:          {"SLASH", 0x35},
	KeyShiftRight:     {"SHIFTRIGHT", 0x36},
	KeyNumpadMultiply: {"NUMPADMULTIPLY", 0x37},
	KeyAltLeft:        {"ALTLEFT", 0x38},
	KeySpacebar:       {"SPACEBAR", 0x39},
	KeyCapsLock:       {"CAPSLOCK", 0x3A},
}

// scanCodeTable is the static 256-entry lookup spec.md §4.5 requires,
// mapping a raw OS scan code to the portable Key enum. Built once from
// keyTable so the forward (Key -> scan code) and reverse (scan code ->
// Key) tables can never disagree.
var scanCodeTable [256]Key

func init() {
	for k, row := range keyTable {
		scanCodeTable[row.scan] = Key(k)
	}
}

// String returns the KEYBOARD_KEY_STR name for k, or "UNKNOWN" if k is
// out of range.
func (k Key) String() string {
	if int(k) >= len(keyTable) {
		return "UNKNOWN"
	}
	return keyTable[k].name
}

// ScanCodeToKey translates a raw OS scan code into the portable Key
// enum. Unrecognized codes translate to KeyNone.
func ScanCodeToKey(scanCode byte) Key {
	return scanCodeTable[scanCode]
}

// nameToKey backs KeyByName, used when decoding the KEYS array of
// input.json (spec.md §6.3).
var nameToKey map[string]Key

func init() {
	nameToKey = make(map[string]Key, len(keyTable))
	for k, row := range keyTable {
		nameToKey[row.name] = Key(k)
	}
}

// KeyByName resolves one of keyTable's names (e.g. "W", "SPACEBAR") back
// to its Key constant.
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}
