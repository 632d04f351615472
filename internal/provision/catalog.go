// Package provision defines the built-in Ubuntu 22.04 step catalog.
//
// Everything here is content, not engine: each entry is an id, a prompt and
// a shell command (or profile block) handed to the step registry. The
// engine neither knows nor cares what the commands do; it only sees opaque
// actions that may write diagnostics and exit with success or failure.
//
// Commands are written to be re-run safe. apt-get installs are naturally
// idempotent, downloads overwrite in place, clones are guarded with a
// directory check, and profile blocks are marker-guarded. A failed step
// leaves whatever partial state it produced; the fix is re-running the
// tool, not rollback.
package provision

import (
	"fmt"

	"github.com/norelnorel3/ubuntu-setup-script/internal/catalog"
	"github.com/norelnorel3/ubuntu-setup-script/internal/config"
	"github.com/norelnorel3/ubuntu-setup-script/internal/profile"
	"github.com/norelnorel3/ubuntu-setup-script/internal/shell"
	"github.com/norelnorel3/ubuntu-setup-script/internal/step"
)

const (
	commonPackages = "git curl wget vim htop jq unzip ca-certificates gnupg lsb-release apt-transport-https"

	dockerInstall = `install -m 0755 -d /etc/apt/keyrings &&
curl -fsSL https://download.docker.com/linux/ubuntu/gpg -o /etc/apt/keyrings/docker.asc &&
chmod a+r /etc/apt/keyrings/docker.asc &&
echo "deb [arch=$(dpkg --print-architecture) signed-by=/etc/apt/keyrings/docker.asc] https://download.docker.com/linux/ubuntu $(. /etc/os-release && echo "$VERSION_CODENAME") stable" > /etc/apt/sources.list.d/docker.list &&
apt-get update &&
apt-get install -y docker-ce docker-ce-cli containerd.io docker-buildx-plugin docker-compose-plugin`

	kubectlInstall = `curl -fsSLo /usr/local/bin/kubectl "https://dl.k8s.io/release/$(curl -fsSL https://dl.k8s.io/release/stable.txt)/bin/linux/amd64/kubectl" &&
chmod +x /usr/local/bin/kubectl`

	helmInstall = `curl -fsSL https://raw.githubusercontent.com/helm/helm/main/scripts/get-helm-3 | bash`

	awsCliInstall = `cd "$(mktemp -d)" &&
curl -fsSLo awscliv2.zip "https://awscli.amazonaws.com/awscli-exe-linux-x86_64.zip" &&
unzip -q awscliv2.zip &&
./aws/install --update`

	azureCliInstall = `curl -fsSL https://aka.ms/InstallAzureCLIDeb | bash`
)

// profileLines is the configuration block appended to the shell profile.
var profileLines = []string{
	`export EDITOR=vim`,
	`alias k='kubectl'`,
	`alias d='docker'`,
	`alias ll='ls -alF'`,
}

// BuildRegistry assembles the full step registry: the built-in catalog in
// its fixed order, followed by operator-defined extra entries.
func BuildRegistry(cfg *config.Config, sh *shell.Runner, prof *profile.Appender, extra []catalog.Entry) (*step.Registry, error) {
	reg := step.NewRegistry()

	builtin := []step.Step{
		{
			ID:     "system-update",
			Prompt: "Update package lists and upgrade installed packages",
			Action: commandAction(sh, "apt-get update && apt-get -y upgrade"),
		},
		{
			ID:     "common-packages",
			Prompt: "Install common packages (" + commonPackages + ")",
			Action: commandAction(sh, "apt-get -y install "+commonPackages),
		},
		{
			ID:     "zsh",
			Prompt: "Install zsh",
			Action: commandAction(sh, "apt-get -y install zsh"),
		},
		{
			ID:     "oh-my-zsh",
			Prompt: "Install the oh-my-zsh framework",
			Action: commandAction(sh, fmt.Sprintf(
				`[ -d %q ] || git clone --depth=1 https://github.com/ohmyzsh/ohmyzsh.git %q`,
				cfg.Home+"/.oh-my-zsh", cfg.Home+"/.oh-my-zsh")),
		},
		{
			ID:     "docker",
			Prompt: "Install the Docker engine",
			Action: commandAction(sh, dockerInstall),
		},
		{
			ID:     "kubectl",
			Prompt: "Install kubectl",
			Action: commandAction(sh, kubectlInstall),
		},
		{
			ID:     "helm",
			Prompt: "Install helm",
			Action: commandAction(sh, helmInstall),
		},
		{
			ID:     "aws-cli",
			Prompt: "Install the AWS CLI",
			Action: commandAction(sh, awsCliInstall),
		},
		{
			ID:     "azure-cli",
			Prompt: "Install the Azure CLI",
			Action: commandAction(sh, azureCliInstall),
		},
		{
			ID:     "shell-profile",
			Prompt: "Append aliases and environment settings to " + prof.Path(),
			Action: profileAction(prof, "aliases", profileLines),
		},
	}

	for _, s := range builtin {
		if err := reg.Register(s); err != nil {
			return nil, err
		}
	}

	for _, e := range extra {
		if err := reg.Register(entryStep(e, sh, prof)); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// entryStep converts a catalog entry into an executable step.
func entryStep(e catalog.Entry, sh *shell.Runner, prof *profile.Appender) step.Step {
	s := step.Step{ID: e.ID, Prompt: e.Prompt}
	switch {
	case e.Command != "" && e.Profile != nil:
		s.Action = commandThenProfileAction(sh, e.Command, prof, e.Profile.Name, e.Profile.Lines)
	case e.Command != "":
		s.Action = commandAction(sh, e.Command)
	default:
		s.Action = profileAction(prof, e.Profile.Name, e.Profile.Lines)
	}
	return s
}
