package prompt

import (
	"fmt"
	"strings"

	"github.com/futig/docgen-backend/internal/entity"
)

const legalRole = "You are a legal expert specializing in business contracts and startup law."

type legalSection struct {
	key   string
	title string
	hint  string
}

// legalSchema renders the literal JSON structure of a legal document.
func legalSchema(title string, sections []legalSection) string {
	var b strings.Builder
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  %q: %q,\n", entity.KeyDocumentTitle, title)
	for i, s := range sections {
		fmt.Fprintf(&b, "  %q: {\n    \"title\": %q,\n    \"content\": %q\n  }", s.key, s.title, s.hint)
		if i < len(sections)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	b.WriteString("Every \"title\" and \"content\" value is a string. Separate paragraphs inside \"content\" with a blank line.")
	return b.String()
}

// legalFallback builds fixed content in section order from per-key texts.
func legalFallback(title string, sections []legalSection, texts map[string]string) *entity.StructuredContent {
	c := entity.NewStructuredContent()
	c.Set(entity.KeyDocumentTitle, title)
	for _, s := range sections {
		c.Set(s.key, section(s.title, texts[s.key]))
	}
	return c
}

var confidentialitySections = []legalSection{
	{key: "introduction", title: "Introduction and Parties", hint: "Introduction naming both parties and the purpose of the agreement"},
	{key: "definitions", title: "Definition of Confidential Information", hint: "What constitutes confidential information"},
	{key: "obligations", title: "Obligations of Receiving Party", hint: "Obligations and responsibilities of the receiving party"},
	{key: "permitted_disclosures", title: "Permitted Disclosures", hint: "Circumstances under which disclosure is permitted"},
	{key: "return_of_information", title: "Return of Information", hint: "Requirements for returning confidential information"},
	{key: "term_termination", title: "Term and Termination", hint: "Duration of the agreement and termination conditions"},
	{key: "remedies", title: "Remedies", hint: "Remedies available for breach of the agreement"},
	{key: "general_provisions", title: "General Provisions", hint: "Governing law, jurisdiction and other general terms"},
}

func confidentialityTemplate(name string, kind entity.ContentKind, docName string) *Template {
	title := strings.ToUpper(docName)
	return &Template{
		Name:          name,
		Kind:          kind,
		Title:         title,
		Description:   "Protects confidential information shared between parties",
		Category:      entity.CategoryLegal,
		FilePrefix:    name,
		Role:          legalRole,
		FieldsHeading: "Parties Information",
		Task: fmt.Sprintf("Generate a professional %s covering: introduction and parties, definition of confidential information, "+
			"obligations of the receiving party, permitted disclosures, return of information, term and termination, remedies "+
			"and general provisions. Customize every section to the parties above.", docName),
		Schema:    legalSchema(title, confidentialitySections),
		Rules:     []string{"Use [DATE] where the agreement date belongs."},
		Shape:     entity.ShapeObject,
		NewRecord: func() entity.Record { return &entity.PartiesInfo{} },
		Fallback: func(rec entity.Record) *entity.StructuredContent {
			p := recordAs[entity.PartiesInfo](rec)
			return legalFallback(title, confidentialitySections, map[string]string{
				"introduction": fmt.Sprintf("This %s is entered into between %s and %s for the purpose of %s.",
					title, p.CompanyName.Or("[Company Name]"), p.OtherPartyName.Or("[Other Party Name]"), p.Purpose.Or("[Purpose]")),
				"definitions":           "Confidential Information includes all non-public, proprietary information disclosed by either party.",
				"obligations":           "The receiving party agrees to maintain confidentiality and use the information solely for the specified purpose.",
				"permitted_disclosures": "Information may be disclosed if required by law or if it becomes publicly available through no fault of the receiving party.",
				"return_of_information": "All confidential materials must be returned or destroyed upon termination of this agreement.",
				"term_termination": fmt.Sprintf("This agreement shall remain in effect for %s unless terminated earlier.",
					p.Duration.Or("[Duration]")),
				"remedies":           "Breach of this agreement may result in irreparable harm, and the disclosing party may seek injunctive relief.",
				"general_provisions": "This agreement shall be governed by applicable law and any disputes shall be resolved through appropriate legal channels.",
			})
		},
	}
}

var employmentSections = []legalSection{
	{key: "parties_and_position", title: "Parties and Position", hint: "Agreement details, parties involved and position description"},
	{key: "duties_responsibilities", title: "Duties and Responsibilities", hint: "Job duties and responsibilities"},
	{key: "compensation_benefits", title: "Compensation and Benefits", hint: "Salary, benefits and compensation details"},
	{key: "confidentiality", title: "Confidentiality", hint: "Confidentiality obligations and non-disclosure terms"},
	{key: "termination", title: "Termination", hint: "Termination conditions and procedures"},
	{key: "general_provisions", title: "General Provisions", hint: "Governing law, amendments and other general terms"},
}

func employmentTemplate() *Template {
	const title = "EMPLOYMENT AGREEMENT"
	return &Template{
		Name:          string(entity.KindEmploymentAgreement),
		Aliases:       []string{"employment"},
		Kind:          entity.KindEmploymentAgreement,
		Title:         title,
		Description:   "Defines terms of employment for new hires",
		Category:      entity.CategoryLegal,
		FilePrefix:    "employment",
		Role:          "You are a legal expert specializing in employment law.",
		FieldsHeading: "Employment Information",
		Task:          "Generate a professional employment agreement with standard employment terms tailored to the information above.",
		Schema:        legalSchema(title, employmentSections),
		Rules:         []string{"Use [DATE] where the agreement date belongs."},
		Shape:         entity.ShapeObject,
		NewRecord:     func() entity.Record { return &entity.EmploymentInfo{} },
		Fallback: func(rec entity.Record) *entity.StructuredContent {
			e := recordAs[entity.EmploymentInfo](rec)
			return legalFallback(title, employmentSections, map[string]string{
				"parties_and_position": fmt.Sprintf("Employment agreement between %s and %s for the position of %s.",
					e.CompanyName.Or("[Company Name]"), e.EmployeeName.Or("[Employee Name]"), e.Position.Or("[Position]")),
				"duties_responsibilities": fmt.Sprintf("Employee will perform duties as %s in the %s department.",
					e.Position.Or("[Position]"), e.Department.Or("[Department]")),
				"compensation_benefits": fmt.Sprintf("Annual salary of %s plus benefits as outlined in company policy.",
					e.Salary.Or("[Salary]")),
				"confidentiality":    "Employee agrees to maintain confidentiality of all proprietary company information.",
				"termination":        "Employment may be terminated by either party with appropriate notice as required by law.",
				"general_provisions": "This agreement is governed by applicable employment law and company policies.",
			})
		},
	}
}

var founderSections = []legalSection{
	{key: "company_formation", title: "Company Formation and Ownership", hint: "Company details and initial ownership structure"},
	{key: "equity_distribution", title: "Equity Distribution", hint: "Equity allocation among founders"},
	{key: "roles_responsibilities", title: "Roles and Responsibilities", hint: "Each founder's role, duties and time commitment"},
	{key: "vesting_provisions", title: "Vesting Provisions", hint: "Equity vesting schedules and conditions"},
	{key: "decision_making", title: "Decision Making Process", hint: "How major business decisions are made"},
	{key: "departure_provisions", title: "Founder Departure", hint: "What happens if a founder leaves the company"},
	{key: "intellectual_property", title: "Intellectual Property", hint: "IP ownership and assignment provisions"},
	{key: "general_provisions", title: "General Provisions", hint: "Dispute resolution, governing law and other terms"},
}

func founderTemplate() *Template {
	const title = "FOUNDER AGREEMENT"
	return &Template{
		Name:          string(entity.KindFounderAgreement),
		Aliases:       []string{"founder", "founders"},
		Kind:          entity.KindFounderAgreement,
		Title:         title,
		Description:   "Defines relationships and equity among co-founders",
		Category:      entity.CategoryLegal,
		FilePrefix:    "founder_agreement",
		Role:          "You are a legal expert specializing in startup and business law.",
		FieldsHeading: "Founders Information",
		Task:          "Generate a professional founder agreement covering all essential aspects of a startup founder relationship.",
		Schema:        legalSchema(title, founderSections),
		Rules:         []string{"Use [DATE] where the agreement date belongs."},
		Shape:         entity.ShapeObject,
		NewRecord:     func() entity.Record { return &entity.FoundersInfo{} },
		Fallback: func(rec entity.Record) *entity.StructuredContent {
			f := recordAs[entity.FoundersInfo](rec)
			return legalFallback(title, founderSections, map[string]string{
				"company_formation":      fmt.Sprintf("Agreement for %s among the founding team.", f.CompanyName.Or("[Company Name]")),
				"equity_distribution":    fmt.Sprintf("Equity will be distributed as follows: %s.", f.EquitySplit.Or("[Equity Split]")),
				"roles_responsibilities": fmt.Sprintf("Founder roles and responsibilities: %s.", f.Roles.Or("[Roles and Responsibilities]")),
				"vesting_provisions":     fmt.Sprintf("Equity vesting schedule: %s.", f.VestingSchedule.Or("[Vesting Schedule]")),
				"decision_making":        "Major decisions require consensus among all founders.",
				"departure_provisions":   "Procedures for handling founder departure and equity treatment.",
				"intellectual_property":  "All IP developed for the company belongs to the company.",
				"general_provisions":     "This agreement is governed by applicable corporate law.",
			})
		},
	}
}

var termsSections = []legalSection{
	{key: "acceptance_of_terms", title: "Acceptance of Terms", hint: "How users accept these terms"},
	{key: "service_description", title: "Description of Service", hint: "What the service provides"},
	{key: "user_obligations", title: "User Obligations", hint: "Acceptable use and user responsibilities"},
	{key: "intellectual_property", title: "Intellectual Property", hint: "Ownership of content and trademarks"},
	{key: "limitation_of_liability", title: "Limitation of Liability", hint: "Disclaimers and liability limits"},
	{key: "termination", title: "Termination", hint: "Suspension and termination of access"},
	{key: "governing_law", title: "Governing Law", hint: "Applicable law and dispute resolution"},
	{key: "changes_to_terms", title: "Changes to Terms", hint: "How the terms may be updated"},
}

func termsTemplate() *Template {
	const title = "TERMS OF SERVICE"
	return &Template{
		Name:          string(entity.KindTermsOfService),
		Aliases:       []string{"tos", "terms"},
		Kind:          entity.KindTermsOfService,
		Title:         title,
		Description:   "Defines the terms and conditions for using a service",
		Category:      entity.CategoryLegal,
		FilePrefix:    "terms_of_service",
		Role:          legalRole,
		FieldsHeading: "Company Information",
		Task:          "Generate professional Terms of Service for the service described above.",
		Schema:        legalSchema(title, termsSections),
		Rules:         []string{"Use [DATE] for the effective date when none is given."},
		Shape:         entity.ShapeObject,
		NewRecord:     func() entity.Record { return &entity.CompanyInfo{} },
		Fallback: func(rec entity.Record) *entity.StructuredContent {
			c := recordAs[entity.CompanyInfo](rec)
			company := c.CompanyName.Or("[Company Name]")
			return legalFallback(title, termsSections, map[string]string{
				"acceptance_of_terms":     fmt.Sprintf("By accessing or using the services of %s you agree to be bound by these Terms of Service.", company),
				"service_description":     fmt.Sprintf("%s provides %s.", company, c.ServiceDescription.Or("[Service Description]")),
				"user_obligations":        "Users agree to use the service lawfully and not to interfere with its operation.",
				"intellectual_property":   fmt.Sprintf("All content and trademarks made available through the service remain the property of %s.", company),
				"limitation_of_liability": "The service is provided as is, without warranties of any kind, to the extent permitted by law.",
				"termination":             "Access may be suspended or terminated for violation of these terms.",
				"governing_law":           fmt.Sprintf("These terms are governed by the laws of %s.", c.Jurisdiction.Or("[Jurisdiction]")),
				"changes_to_terms":        "These terms may be updated from time to time. Continued use constitutes acceptance of the updated terms.",
			})
		},
	}
}

var privacySections = []legalSection{
	{key: "information_collected", title: "Information We Collect", hint: "Categories of personal data collected"},
	{key: "use_of_information", title: "How We Use Information", hint: "Purposes of processing"},
	{key: "data_sharing", title: "Sharing of Information", hint: "Third parties data is shared with"},
	{key: "data_security", title: "Data Security", hint: "Security measures protecting the data"},
	{key: "user_rights", title: "Your Rights", hint: "Access, correction and deletion rights"},
	{key: "cookies", title: "Cookies and Tracking", hint: "Use of cookies and similar technologies"},
	{key: "children_privacy", title: "Children's Privacy", hint: "Handling of data from minors"},
	{key: "contact_information", title: "Contact Information", hint: "How to reach the company about privacy"},
}

func privacyTemplate() *Template {
	const title = "PRIVACY POLICY"
	return &Template{
		Name:          string(entity.KindPrivacyPolicy),
		Aliases:       []string{"privacy"},
		Kind:          entity.KindPrivacyPolicy,
		Title:         title,
		Description:   "Informs users about data collection and usage",
		Category:      entity.CategoryLegal,
		FilePrefix:    "privacy_policy",
		Role:          "You are a legal expert specializing in data protection and privacy law.",
		FieldsHeading: "Company Information",
		Task:          "Generate a professional Privacy Policy for the company described above.",
		Schema:        legalSchema(title, privacySections),
		Rules:         []string{"Use [DATE] for the effective date when none is given."},
		Shape:         entity.ShapeObject,
		NewRecord:     func() entity.Record { return &entity.CompanyInfo{} },
		Fallback: func(rec entity.Record) *entity.StructuredContent {
			c := recordAs[entity.CompanyInfo](rec)
			company := c.CompanyName.Or("[Company Name]")
			return legalFallback(title, privacySections, map[string]string{
				"information_collected": fmt.Sprintf("%s collects the following information: %s.", company, c.DataCollected.Or("[Data Collected]")),
				"use_of_information":    "Information is used to provide, maintain and improve the service.",
				"data_sharing":          fmt.Sprintf("Information may be shared with the following service providers: %s.", c.ThirdPartyServices.Or("[Third-Party Services]")),
				"data_security":         "Reasonable technical and organizational measures are used to protect personal information.",
				"user_rights":           "Users may request access to, correction of, or deletion of their personal information.",
				"cookies":               "Cookies and similar technologies may be used to operate and analyze the service.",
				"children_privacy":      "The service is not directed to children and does not knowingly collect their personal information.",
				"contact_information":   fmt.Sprintf("Questions about this policy can be sent to %s.", c.ContactEmail.Or("[Contact Email]")),
			})
		},
	}
}

func legalTemplates() []*Template {
	return []*Template{
		confidentialityTemplate(string(entity.KindNDA), entity.KindNDA, "Non-Disclosure Agreement"),
		confidentialityTemplate(string(entity.KindCDA), entity.KindCDA, "Confidentiality Disclosure Agreement"),
		employmentTemplate(),
		founderTemplate(),
		termsTemplate(),
		privacyTemplate(),
	}
}
