package sanitizer

// DisplayName cleans an account name.
var DisplayName = Compose(StripHTML, RemoveControlChars, SingleLine)

// Email trims an address. Case is kept because accounts are matched
// exactly.
var Email = Compose(RemoveControlChars, Trim)

// Comment cleans review text, keeping paragraph breaks.
var Comment = Compose(StripHTML, RemoveControlChars, CollapseBlankLines, Trim, MaxLength(MaxCommentLength))

// Search cleans catalog search text.
var Search = Compose(RemoveControlChars, SingleLine)
