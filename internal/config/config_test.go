package config

import "testing"

func TestLoadOrgProfileFields(t *testing.T) {
	t.Setenv("ORG_REGISTRATION_NO", "123/456")
	t.Setenv("ORG_LOGO_CAPTION_LEFT", "स्थापित २०३५")
	t.Setenv("ORG_LOGO_CAPTION_RIGHT", "सेवा नै धर्म हो")

	cfg := Load()

	if cfg.Org.RegistrationNo != "123/456" {
		t.Errorf("RegistrationNo = %q", cfg.Org.RegistrationNo)
	}
	if cfg.Org.LogoCaptionL != "स्थापित २०३५" {
		t.Errorf("LogoCaptionL = %q", cfg.Org.LogoCaptionL)
	}
	if cfg.Org.LogoCaptionR != "सेवा नै धर्म हो" {
		t.Errorf("LogoCaptionR = %q", cfg.Org.LogoCaptionR)
	}
}
