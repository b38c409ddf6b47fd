package extract

// FieldKey identifies one of the canonical personal-record fields.
type FieldKey string

const (
	FieldName    FieldKey = "name"
	FieldAge     FieldKey = "age"
	FieldGender  FieldKey = "gender"
	FieldAddress FieldKey = "address"
	FieldID      FieldKey = "id_number"
	FieldEmail   FieldKey = "email"
	FieldPhone   FieldKey = "phone"
)

// labelEntry pairs a field with the label spellings seen on scanned forms,
// in English and Devanagari.
type labelEntry struct {
	key      FieldKey
	synonyms []string
}

// labelDictionary is the canonical label dictionary. Its order doubles as
// the tie-break order when two fields score equally against a line, so the
// order is fixed: name, age, gender, address, id_number, email, phone.
// Initialized once; never mutated.
var labelDictionary = []labelEntry{
	{FieldName, []string{"Name", "First Name", "Full Name", "Student Name", "नाम"}},
	{FieldAge, []string{"Age", "Years", "DOB", "Date of Birth", "आयु", "उम्र"}},
	{FieldGender, []string{"Gender", "Sex", "लिंग"}},
	{FieldAddress, []string{"Address", "Add", "Residing at", "Location", "Permanent Address", "पता"}},
	{FieldID, []string{"ID", "ID Number", "Ref No", "Roll No", "पहचान पत्र"}},
	{FieldEmail, []string{"Email", "E-mail", "Mail", "ईमेल"}},
	{FieldPhone, []string{"Phone", "Mobile", "Cell", "Tel", "Contact", "फोन", "मोबाइल"}},
}

func synonymsFor(key FieldKey) []string {
	for _, entry := range labelDictionary {
		if entry.key == key {
			return entry.synonyms
		}
	}
	return nil
}

// Fields is the working record built up by the extraction passes. A missing
// key means the field was never seen; an empty string means its label was
// seen but no value followed it. The distinction keeps later passes from
// overwriting a field the primary parser already claimed.
type Fields map[FieldKey]string

// has reports whether the field holds an actual value.
func (f Fields) has(key FieldKey) bool {
	return f[key] != ""
}
