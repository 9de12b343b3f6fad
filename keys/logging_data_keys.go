package keys

// Keys used to identify log message data items.
const Request = "Request"
const StatusCode = "status_code"
const PaymentID = "payment_id"
const PageToken = "page_token"
