package services

import "time"

// Now is the clock used for order and payment date defaults.
// Tests override it to pin date-dependent behavior.
var Now = time.Now
