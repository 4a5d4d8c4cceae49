package fix

// Standard header and trailer tags.
const (
	TagBeginString  = 8
	TagBodyLength   = 9
	TagCheckSum     = 10
	TagMsgSeqNum    = 34
	TagMsgType      = 35
	TagSenderCompID = 49
	TagSendingTime  = 52
	TagTargetCompID = 56
)

// Application-level tags used by the default message-type rules.
const (
	TagClOrdID       = 11
	TagExecID        = 17
	TagHandlInst     = 21
	TagOrderID       = 37
	TagOrderQty      = 38
	TagOrdStatus     = 39
	TagOrdType       = 40
	TagPrice         = 44
	TagSide          = 54
	TagSymbol        = 55
	TagTransactTime  = 60
	TagEncryptMethod = 98
	TagHeartBtInt    = 108
	TagExecType      = 150
)

var tagNames = map[int]string{
	TagBeginString:   "BeginString",
	TagBodyLength:    "BodyLength",
	TagCheckSum:      "CheckSum",
	TagClOrdID:       "ClOrdID",
	TagExecID:        "ExecID",
	TagHandlInst:     "HandlInst",
	TagMsgSeqNum:     "MsgSeqNum",
	TagMsgType:       "MsgType",
	TagOrderID:       "OrderID",
	TagOrderQty:      "OrderQty",
	TagOrdStatus:     "OrdStatus",
	TagOrdType:       "OrdType",
	TagPrice:         "Price",
	TagSenderCompID:  "SenderCompID",
	TagSendingTime:   "SendingTime",
	TagSide:          "Side",
	TagSymbol:        "Symbol",
	TagTargetCompID:  "TargetCompID",
	TagTransactTime:  "TransactTime",
	TagEncryptMethod: "EncryptMethod",
	TagHeartBtInt:    "HeartBtInt",
	TagExecType:      "ExecType",
}

// TagName returns the human-readable name for a tag, if one is known.
func TagName(tag int) (string, bool) {
	name, ok := tagNames[tag]
	return name, ok
}
