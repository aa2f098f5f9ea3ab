package constants

import "time"

const DefaultRequestTimeout = 10 * time.Second

// report modes
const ModeNone = "none"
const ModeDetailed = "detailed"
const ModeRaw = "raw"

const DefaultMode = ModeDetailed

// substring of the bridge error description returned for an unknown application key
const UnauthorizedDescription = "unauthorized user"

// operator messages
const MessageConnectionError = "Connection error! Have you entered the correct IP?"
const MessageUnauthorized = "Unauthorized user! Have you entered the correct API key?"
const MessageCheckAPIKey = "Have you entered the correct API key?"
const MessageUnknownModeFormat = `Unknown mode "%s"! (modes: none, detailed, raw)`
const MessageInvalidResponseFormat = "Invalid response from bridge! (%s)"

const PromptIntro = "Please give the following information:"
const PromptBridgeIP = "Bridge IP: "
const PromptAppKey = "API Key/Username: "
