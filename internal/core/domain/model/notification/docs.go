// Package notification contains the Notification aggregate: a message
// addressed to one recipient or broadcast to a whole recipient type
// (customer, restaurant, driver, admin).
package notification
