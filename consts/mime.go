package consts

const (
	MIMETextPlain         = "text/plain"
	MIMEOctetStream       = "application/octet-stream"
	MIMEFormData          = "application/x-www-form-urlencoded"
	MIMEMultipartFormData = "multipart/form-data"
	MIMEJSON              = "application/json"
	MIMEXML               = "application/xml"
	MIMEHTML              = "text/html"
)
