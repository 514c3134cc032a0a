package naming

// KeySeparator joins the words of a normalised name
const KeySeparator = " "
