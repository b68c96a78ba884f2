package schema

// Nodes returns the node specs in load order. Every label merges on the
// integer property "id"; all other properties participate in the merge
// pattern too, so a key that reappears with different values does not update
// the stored node.
func Nodes() []NodeSpec {
	return []NodeSpec{
		{
			Label:  "Hospital",
			Source: "hospitals",
			Properties: []PropertyMapping{
				{Column: "hospital_id", Property: "id", Type: Int},
				{Column: "hospital_name", Property: "name", Type: String},
				{Column: "hospital_state", Property: "state_name", Type: String},
			},
		},
		{
			Label:  "Payer",
			Source: "payers",
			Properties: []PropertyMapping{
				{Column: "payer_id", Property: "id", Type: Int},
				{Column: "payer_name", Property: "name", Type: String},
			},
		},
		{
			Label:  "Physician",
			Source: "physicians",
			Properties: []PropertyMapping{
				{Column: "physician_id", Property: "id", Type: Int},
				{Column: "physician_name", Property: "name", Type: String},
				{Column: "physician_dob", Property: "dob", Type: String},
				{Column: "physician_grad_year", Property: "grad_year", Type: String},
				{Column: "medical_school", Property: "school", Type: String},
				{Column: "salary", Property: "salary", Type: Float},
			},
		},
		{
			Label:  "Patient",
			Source: "patients",
			Properties: []PropertyMapping{
				{Column: "patient_id", Property: "id", Type: Int},
				{Column: "patient_name", Property: "name", Type: String},
				{Column: "patient_sex", Property: "sex", Type: String},
				{Column: "patient_dob", Property: "dob", Type: String},
				{Column: "patient_blood_type", Property: "blood_type", Type: String},
			},
		},
		{
			Label:  "Visit",
			Source: "visits",
			Properties: []PropertyMapping{
				{Column: "visit_id", Property: "id", Type: Int},
				{Column: "room_number", Property: "room_number", Type: Int},
				{Column: "admission_type", Property: "admission_type", Type: String},
				{Column: "date_of_admission", Property: "admission_date", Type: String},
				{Column: "test_results", Property: "test_results", Type: String},
				{Column: "visit_status", Property: "status", Type: String},
				{Column: "chief_complaint", Property: "chief_complaint", Type: String},
				{Column: "treatment_description", Property: "treatment_description", Type: String},
				{Column: "primary_diagnosis", Property: "diagnosis", Type: String},
				{Column: "discharge_date", Property: "discharge_date", Type: String},
			},
		},
		{
			Label:  "Review",
			Source: "reviews",
			Properties: []PropertyMapping{
				{Column: "review_id", Property: "id", Type: Int},
				{Column: "review", Property: "text", Type: String},
				{Column: "patient_name", Property: "patient_name", Type: String},
				{Column: "physician_name", Property: "physician_name", Type: String},
				{Column: "hospital_name", Property: "hospital_name", Type: String},
			},
		},
	}
}

// Relationships returns the relationship specs in load order. All of them
// resolve both endpoints by integer id, so every node load must complete
// before any relationship load starts.
func Relationships() []RelationshipSpec {
	return []RelationshipSpec{
		{
			Type:   "AT",
			Source: "visits",
			From:   EndpointSpec{Label: "Visit", Column: "visit_id"},
			To:     EndpointSpec{Label: "Hospital", Column: "hospital_id"},
		},
		{
			Type:   "WRITES",
			Source: "reviews",
			From:   EndpointSpec{Label: "Visit", Column: "visit_id"},
			To:     EndpointSpec{Label: "Review", Column: "review_id"},
		},
		{
			Type:   "TREATS",
			Source: "visits",
			From:   EndpointSpec{Label: "Physician", Column: "physician_id"},
			To:     EndpointSpec{Label: "Visit", Column: "visit_id"},
		},
		{
			Type:   "COVERED_BY",
			Source: "visits",
			From:   EndpointSpec{Label: "Visit", Column: "visit_id"},
			To:     EndpointSpec{Label: "Payer", Column: "payer_id"},
			CreateOnly: []PropertyMapping{
				{Column: "discharge_date", Property: "service_date", Type: String},
				{Column: "billing_amount", Property: "billing_amount", Type: Float},
			},
		},
		{
			Type:   "HAS",
			Source: "visits",
			From:   EndpointSpec{Label: "Patient", Column: "patient_id"},
			To:     EndpointSpec{Label: "Visit", Column: "visit_id"},
		},
		{
			Type:   "EMPLOYS",
			Source: "visits",
			From:   EndpointSpec{Label: "Hospital", Column: "hospital_id"},
			To:     EndpointSpec{Label: "Physician", Column: "physician_id"},
		},
	}
}
