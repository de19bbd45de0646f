package domain

// ChecklistSize is the number of mandatory e-invoice fields a document is
// validated against. It is the only process-wide configuration constant.
const ChecklistSize = 34

// Checklist is the fixed ordered set of mandatory e-invoice field names,
// grouped supplier → buyer → invoice → line items. "Supplier's Contact
// Number" appears under both supplier and invoice sections in the source
// regulation; it is listed once here.
var Checklist = []string{
	// Supplier
	"Supplier's TIN",
	"Supplier's Registration / Identification Number / Passport Number",
	"Supplier's SST Registration Number [Mandatory for SST-registrant]",
	"Supplier's Tourism Tax Registration Number [Mandatory for tourism tax registrant]",
	"Supplier's Malaysia Standard Industrial Classification (MSIC) Code",
	"Supplier's Business Activity Description",
	"Supplier's Address",
	"Supplier's Contact Number",

	// Buyer
	"Buyer's TIN",
	"Buyer's Registration / Identification Number / Passport Number",
	"Buyer's SST Registration Number [Mandatory for SST-registrant]",
	"Buyer's Address",
	"Buyer's Contact Number",

	// Invoice
	"e-Invoice Version",
	"e-Invoice Type",
	"e-Invoice Code / Number",
	"Original e-Invoice Reference Number [Mandatory, where applicable]",
	"e-Invoice Date and Time",
	"Issuer's Digital Signature",
	"Invoice Currency Code",
	"Currency Exchange Rate [Mandatory, where applicable]",

	// Line items
	"Classification",
	"Description of Product or Service",
	"Unit Price",
	"Tax Type",
	"Tax Rate [Mandatory, where applicable]",
	"Details of Tax Exemption [Mandatory if tax exemption is applicable]",
	"Amount Exempted from Tax [Mandatory if tax exemption is applicable]",
	"Subtotal",
	"Total Excluding Tax",
	"Total Including Tax",
	"Total Payable Amount",
	"Quantity",
	"Measurement",
}
