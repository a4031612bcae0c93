package memory

const testInventory = `
machineFolder: /home/user/VirtualBox VMs
machines:
  - id: 0b6d3e2a-1c8f-4a53-9a0c-3f4f2b8c1d01
    name: Ubuntu
    osType: Ubuntu_64
    memory: 4GiB
    cpus: 2
    groups: ["/Work"]
    logs:
      - name: VBox.log
        content: "00:00:00.000000 VirtualBox VM starting"
  - id: 0b6d3e2a-1c8f-4a53-9a0c-3f4f2b8c1d02
    name: Windows
    osType: Windows11_64
    state: Running
    memory: 8g
    session:
      name: GUI/Qt
      pid: 4242
      acpi: true
  - name: Broken
    inaccessible: "Could not find file Broken.vbox"
cloud:
  providers:
    - shortName: OCI
      name: Oracle Cloud Infrastructure
      properties: [user, tenancy, region]
      profiles:
        - name: default
          properties:
            region: eu-frankfurt-1
  machines:
    - id: 9a1f1e00-0000-4000-8000-000000000001
      name: web-1
      provider: OCI
      profile: default
      state: Stopped
hostInterfaces:
  - name: vboxnet0
    hostOnly: true
    ipv4: 192.168.56.1
    mask: 255.255.255.0
dhcpServers:
  - network: HostInterfaceNetworking-vboxnet0
    enabled: true
    address: 192.168.56.100
    mask: 255.255.255.0
    lower: 192.168.56.101
    upper: 192.168.56.254
`
